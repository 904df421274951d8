package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 身份提供方签发的令牌载荷
// Subject 对应用户在身份提供方的唯一标识
type Claims struct {
	Subject string `json:"sub_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, subject, name, email, tokenType string, expire time.Duration) (string, error) {
	claims := Claims{
		Subject: subject,
		Name:    name,
		Email:   email,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Type != expectedType {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}
