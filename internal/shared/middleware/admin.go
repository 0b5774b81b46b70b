package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voidspace-backend/internal/shared/response"
)

// Authorizer decides whether a presented credential may perform admin
// operations (comment moderation, newsletter sending). The production
// deployment is single-operator, so the default implementation is a static
// shared secret; a token- or session-based implementation can be dropped in
// without touching the handlers.
type Authorizer interface {
	Authorize(credential string) bool
}

// StaticSecretAuthorizer compares the credential against one configured
// secret by exact string equality.
type StaticSecretAuthorizer struct {
	secret string
}

func NewStaticSecretAuthorizer(secret string) *StaticSecretAuthorizer {
	return &StaticSecretAuthorizer{secret: secret}
}

func (a *StaticSecretAuthorizer) Authorize(credential string) bool {
	// An unset secret disables admin access entirely rather than
	// allowing empty-string bearers through.
	if a.secret == "" {
		return false
	}
	return credential == a.secret
}

// AdminAuth guards every admin-facing route. The check runs before any store
// operation: a missing or mismatched bearer aborts with 401 and no state is
// touched downstream.
func AdminAuth(authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		credential := strings.TrimPrefix(header, "Bearer ")

		if header == "" || credential == header || !authorizer.Authorize(credential) {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
