package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "ravio_session"
	sessionCtxKey = "sessionID"
)

// sessionMiddleware resolves the cart session: header first, then cookie. A
// missing session gets a fresh UUID, echoed in both the header and a cookie so
// either kind of client can hold on to it.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				id = v
			}
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
		}
		c.Header(sessionHeader, id)
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

// adminMiddleware guards the back-office routes with a shared token.
func adminMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" || c.GetHeader("X-Admin-Token") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
