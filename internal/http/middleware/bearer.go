package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/platform/ctxutil"
)

// AttachBearer lifts the caller's bearer credential out of the Authorization
// header into the request context. The token is opaque here: it is never
// decoded, only forwarded to the store, which decides whether it is valid.
func AttachBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			token := strings.TrimSpace(authHeader[7:])
			if token != "" {
				c.Request = c.Request.WithContext(ctxutil.WithBearer(c.Request.Context(), token))
			}
		}
		c.Next()
	}
}
