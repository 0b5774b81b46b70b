package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"voidspace-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIP extracts the submitter's network address and injects it into both
// the gin context and the request context, so the comment service can pass it
// to the store for rate limiting without depending on gin.
//
// Register early in the middleware chain.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set("client_ip", clientIP)

		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClientIPFromContext retrieves the client IP from a request context.
// Returns empty string if not found.
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
