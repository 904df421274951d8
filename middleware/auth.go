package middleware

import (
	"net/http"
	"strings"

	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/jwt"
	"github.com/Himanshu3141/Creatrr/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 严格鉴权，缺少或无效令牌直接 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxSubject, claims.Subject)
		c.Next()
	}
}

// OptionalAuth 宽松鉴权，令牌有效则带上身份，否则按匿名继续
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
			c.Set(context.CtxSubject, claims.Subject)
		}
		c.Next()
	}
}
