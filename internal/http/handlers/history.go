package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/ctxutil"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

type HistoryHandler struct {
	history repos.HistoryRepo
}

func NewHistoryHandler(history repos.HistoryRepo) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// POST /history
// body: { user_id?, dilemma_key?, custom_text?, utilitarian_html?, deontologist_html?, virtue_ethicist_html? }
// Every field is optional; absent ones are stored as null.
func (hh *HistoryHandler) Create(c *gin.Context) {
	var in domain.AnalysisInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, apierr.Validation("invalid json body"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	item, err := hh.history.Create(c.Request.Context(), token, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"item": item})
}

// GET /history?user_id=&limit=&offset=
// user_id is optional; omitting it returns records across all owners.
func (hh *HistoryHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	limit := repos.ParseListLimit(c.Query("limit"))
	offset := repos.ParseListOffset(c.Query("offset"))

	token := ctxutil.GetBearer(c.Request.Context())
	items, total, err := hh.history.List(c.Request.Context(), token, userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := gin.H{"items": items}
	if total >= 0 {
		payload["total"] = total
	} else {
		payload["total"] = nil
	}
	response.OK(c, payload)
}

// DELETE /history?id=
func (hh *HistoryHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, apierr.Validation("id required"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	if err := hh.history.Delete(c.Request.Context(), token, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{})
}
