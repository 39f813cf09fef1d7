package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mindfuly/mindfuly/pkg/helpers"
	"github.com/mindfuly/mindfuly/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token cookie and, when Redis is available,
// checks that the token's session id still matches the active session.
// Sets userID (int64) and userName in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		uid, err := claims.UserIDInt()
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
				return
			}
			c.Set("userName", data["name"])
		}

		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}
