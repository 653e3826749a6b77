package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/ctxutil"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

type ExportHandler struct {
	history repos.HistoryRepo
}

func NewExportHandler(history repos.HistoryRepo) *ExportHandler {
	return &ExportHandler{history: history}
}

// GET /export?user_id=
// Streams the caller's full history, newest first, as a downloadable JSON
// file. No pagination: the whole set goes out in one response.
func (eh *ExportHandler) Export(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.Error(c, apierr.Validation("user_id required"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	items, err := eh.history.ExportAll(c.Request.Context(), token, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := json.MarshalIndent(gin.H{"ok": true, "items": items}, "", "  ")
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=aletheia-export-%s.json", userID))
	c.Data(http.StatusOK, "application/json", body)
}
