package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/mindhaven/core/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"

	// CookieName is the signed credential cookie issued at signup/login.
	CookieName = "auth_token"
)

// Auth returns a middleware that enforces JWT authentication. The credential
// is read from the auth cookie or the Authorization header; on success the
// decoded subject is attached to the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentEmail extracts the authenticated user email from context.
func CurrentEmail(c *gin.Context) string {
	v, _ := c.Get(ContextKeyEmail)
	email, _ := v.(string)
	return email
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
