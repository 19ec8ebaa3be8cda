package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/models"
	"github.com/ironvale/gymd/internal/services/identity"
	"github.com/ironvale/gymd/internal/services/policy"
)

// identityKey is the gin context key the decoded identity is stored
// under by requireAuth.
const identityKey = "gymd.identity"

// tokenCookie is the fallback credential location for browser clients
const tokenCookie = "token"

// requireAuth resolves the caller's identity from the bearer token (or
// the token cookie) and stores it on the request context. Requests
// without a valid credential are rejected.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWithError(c, policy.ErrUnauthenticated)
			return
		}

		out, err := h.identity.VerifyToken(c.Request.Context(), &identity.VerifyTokenInput{
			Token: token,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(identityKey, out.Identity)
		c.Next()
	}
}

// requireRoles rejects callers holding none of the allowed roles. It
// must run after requireAuth.
func (h *Handler) requireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.RequireRole(caller(c), allowed...); err != nil {
			abortWithError(c, err)
			return
		}

		c.Next()
	}
}

// caller returns the identity stored by requireAuth, or nil on
// unauthenticated routes.
func caller(c *gin.Context) *models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}

	id, ok := v.(*models.Identity)
	if !ok {
		return nil
	}

	return id
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(tokenCookie)
	if err != nil {
		return ""
	}

	return cookie
}
