package jwt

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "sub-1", "张三", "zhangsan@example.com", "api", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(secret, "api", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "sub-1" || claims.Name != "张三" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "sub-1", "张三", "zhangsan@example.com", "api", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken([]byte("wrong-secret"), "api", token); err == nil {
		t.Fatal("wrong secret must fail")
	}
	if _, err := ParseToken(secret, "refresh", token); err == nil {
		t.Fatal("wrong token type must fail")
	}

	expired, err := GenerateToken(secret, "sub-1", "张三", "zhangsan@example.com", "api", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(secret, "api", expired); err == nil {
		t.Fatal("expired token must fail")
	}
}
