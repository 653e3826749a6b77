package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/content"
	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
)

type DilemmaHandler struct {
	lib *content.Library
}

func NewDilemmaHandler(lib *content.Library) *DilemmaHandler {
	return &DilemmaHandler{lib: lib}
}

// GET /dilemmas
func (dh *DilemmaHandler) List(c *gin.Context) {
	response.OK(c, gin.H{"dilemmas": dh.lib.Dilemmas()})
}

// GET /dilemmas/:key/responses
func (dh *DilemmaHandler) Responses(c *gin.Context) {
	key := c.Param("key")
	rs, ok := dh.lib.Responses(key)
	if !ok {
		response.Error(c, apierr.Validation("unknown dilemma_key"))
		return
	}
	response.OK(c, gin.H{"dilemma_key": key, "responses": rs})
}
