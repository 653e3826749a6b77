package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

// AuthHandler forwards magic-link sign-in requests to the store's identity
// service. All session handling lives there; this app never issues or
// validates credentials itself.
type AuthHandler struct {
	store supabase.Client
}

func NewAuthHandler(store supabase.Client) *AuthHandler {
	return &AuthHandler{store: store}
}

// POST /auth/otp
// body: { email }
func (ah *AuthHandler) SendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apierr.Validation("invalid json body"))
		return
	}
	if req.Email == "" {
		response.Error(c, apierr.Validation("email required"))
		return
	}
	if ah.store == nil {
		response.Error(c, repos.ErrStoreNotConfigured)
		return
	}

	if err := ah.store.SendOTP(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"sent": true})
}
