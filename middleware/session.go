package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware assigns a session id when the client has none so
// filter memory works for anonymous visitors too.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)

		// Echo it back so the client can reuse it.
		c.Writer.Header().Set("X-Session-ID", sessionId)

		c.Next()
	}
}
