package services

import (
	"context"

	"github.com/yungbote/aletheia-backend/internal/content"
	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

type AnalyzeRequest struct {
	UserID     string
	DilemmaKey string
	CustomText string
}

type AnalyzeResult struct {
	DilemmaKey *string                `json:"dilemma_key"`
	Title      string                 `json:"title,omitempty"`
	CustomText *string                `json:"custom_text"`
	Responses  content.PerspectiveSet `json:"responses"`
	Saved      bool                   `json:"saved"`
}

// AnalysisService resolves a dilemma to its three canned perspective
// responses and, for signed-in callers, records the analysis in history.
// The save is best effort: a store failure is logged, never surfaced.
type AnalysisService interface {
	Analyze(ctx context.Context, token string, req AnalyzeRequest) (*AnalyzeResult, error)
}

type analysisService struct {
	lib     *content.Library
	history repos.HistoryRepo
	log     *logger.Logger
}

func NewAnalysisService(lib *content.Library, history repos.HistoryRepo, baseLog *logger.Logger) AnalysisService {
	svcLog := baseLog.With("service", "AnalysisService")
	return &analysisService{lib: lib, history: history, log: svcLog}
}

func (as *analysisService) Analyze(ctx context.Context, token string, req AnalyzeRequest) (*AnalyzeResult, error) {
	result := &AnalyzeResult{}

	switch {
	case req.DilemmaKey != "":
		d, ok := as.lib.Dilemma(req.DilemmaKey)
		if !ok {
			return nil, apierr.Validation("unknown dilemma_key")
		}
		rs, _ := as.lib.Responses(d.Key)
		result.DilemmaKey = &d.Key
		result.Title = d.Title
		result.Responses = rs
	case req.CustomText != "":
		rs, _ := as.lib.Responses(content.CustomKey)
		result.CustomText = &req.CustomText
		result.Responses = rs
	default:
		return nil, apierr.Validation("dilemma_key or custom_text required")
	}

	if req.UserID != "" {
		result.Saved = as.persist(ctx, token, req.UserID, result)
	}
	return result, nil
}

func (as *analysisService) persist(ctx context.Context, token, userID string, result *AnalyzeResult) bool {
	in := domain.AnalysisInput{
		UserID:             &userID,
		DilemmaKey:         result.DilemmaKey,
		CustomText:         result.CustomText,
		UtilitarianHTML:    &result.Responses.Utilitarian,
		DeontologistHTML:   &result.Responses.Deontologist,
		VirtueEthicistHTML: &result.Responses.VirtueEthicist,
	}
	if _, err := as.history.Create(ctx, token, in); err != nil {
		as.log.Warn("Analysis save skipped", "user_id", userID, "error", err)
		return false
	}
	return true
}
