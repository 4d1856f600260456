package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/expense-service/pkg/response"
)

// RequireRoles rejects the request with 403 unless the caller holds at least
// one of the given role names. Must run after Auth.
func RequireRoles(names ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return func(c *gin.Context) {
		for _, r := range c.GetStringSlice(CtxRolesKey) {
			if _, ok := allowed[r]; ok {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "insufficient role", nil)
	}
}
