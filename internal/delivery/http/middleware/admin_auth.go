package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware accepts only a Bearer admin token signed with secret.
// With no secret configured every request is rejected.
func AdminAuthMiddleware(secret string, events *security.EventLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			events.LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath(), "missing_token")
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := auth.ParseAdminToken(secret, tokenString)
		if err != nil {
			events.LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath(), "invalid_token")
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAdminSubject), claims.Subject)
		ctx := context.WithValue(c.Request.Context(), domain.KeyAdminSubject, claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
