package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fintrack/expense-service/pkg/helpers"
	"github.com/fintrack/expense-service/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "userName"
	CtxRolesKey    = "userRoles"
)

// bearerToken extracts the credential from the Authorization header, falling
// back to the access_token cookie for browser clients.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if tok, err := c.Cookie("access_token"); err == nil {
		return tok
	}
	return ""
}

// Auth validates the access token and ensures an active session exists in
// Redis. It sets userID, userName, and userRoles in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 {
			response.Abort(c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		if sid := data["sid"]; sid != "" && sid != claims.SessionID {
			response.Abort(c, http.StatusUnauthorized, "session superseded", nil)
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set(CtxUsernameKey, data["username"])
		c.Set(CtxRolesKey, splitRoles(data["roles"]))
		c.Next()
	}
}

func splitRoles(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
