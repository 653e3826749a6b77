package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
)

// OK writes the flat success envelope: payload fields plus "ok": true.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error writes {ok:false, error:<message>} with the status carried by the
// error's apierr classification; anything unclassified is a 500 with the
// store's raw message attached.
func Error(c *gin.Context, err error) {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	c.JSON(apierr.StatusOf(err), gin.H{"ok": false, "error": msg})
}
