package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dealdesk/internal/pkg/cookie"
	"dealdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorEmailKey = "operator_email"
	ctxOperatorRoleKey  = "operator_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		email, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorEmailKey, email)
		c.Set(ctxOperatorRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"email": email,
			"role":  role,
		})
		c.Next()
	}
}

func GetOperatorEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxOperatorEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}
