package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"booknest/internal/core/auth"
	"booknest/internal/domain"
	resp "booknest/internal/transport/http/response"
)

const (
	ctxUserID  = "userId"
	ctxIsAdmin = "isAdmin"
)

// AuthJWT validates the bearer token and stores the caller identity and admin
// claim on the context. Missing or invalid token aborts with 401.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, domain.Unauthenticated("missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, domain.Unauthenticated("invalid token"))
			return
		}
		c.Set(ctxUserID, claims.UID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin gates a route on the token's admin claim. Must run after
// AuthJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerIsAdmin(c) {
			resp.AbortFail(c, domain.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CallerIsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(ctxIsAdmin); ok {
		if adm, ok := v.(bool); ok {
			return adm
		}
	}
	return false
}
