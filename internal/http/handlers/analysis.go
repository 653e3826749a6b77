package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/http/response"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/ctxutil"
	"github.com/yungbote/aletheia-backend/internal/services"
)

type AnalysisHandler struct {
	analysis services.AnalysisService
}

func NewAnalysisHandler(analysis services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// POST /analyze
// body: { dilemma_key?, custom_text?, user_id? }
func (ah *AnalysisHandler) Analyze(c *gin.Context) {
	var req struct {
		DilemmaKey string `json:"dilemma_key"`
		CustomText string `json:"custom_text"`
		UserID     string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apierr.Validation("invalid json body"))
		return
	}

	token := ctxutil.GetBearer(c.Request.Context())
	result, err := ah.analysis.Analyze(c.Request.Context(), token, services.AnalyzeRequest{
		UserID:     req.UserID,
		DilemmaKey: req.DilemmaKey,
		CustomText: req.CustomText,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"result": result})
}
