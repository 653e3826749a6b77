package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/ctxutil"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

type SettingsHandler struct {
	settings repos.SettingsRepo
}

func NewSettingsHandler(settings repos.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GET /settings?user_id=
// Requires a bearer credential that the store recognizes. Returns
// settings:null when the user has no row yet.
func (sh *SettingsHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.Error(c, apierr.Validation("user_id required"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	settings, err := sh.settings.Get(c.Request.Context(), token, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if settings == nil {
		response.OK(c, gin.H{"settings": nil})
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

type upsertSettingsReq struct {
	UserID string `json:"user_id"`
	domain.SettingsInput
}

// POST /settings
// body: { user_id, notif_email?, notif_push?, notif_weekly?, theme?, language?, timezone? }
func (sh *SettingsHandler) Upsert(c *gin.Context) {
	var req upsertSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apierr.Validation("invalid json body"))
		return
	}
	if req.UserID == "" {
		response.Error(c, apierr.Validation("user_id required"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	settings, err := sh.settings.Upsert(c.Request.Context(), token, req.UserID, req.SettingsInput)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}
