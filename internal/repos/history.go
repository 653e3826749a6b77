package repos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

const historyTable = "dilemmas_history"

const (
	defaultListLimit = 20
	minListLimit     = 1
	maxListLimit     = 100
)

// ErrStoreNotConfigured surfaces on every persistence path while the app runs
// without SUPABASE_URL / SUPABASE_ANON_KEY.
var ErrStoreNotConfigured = apierr.New(http.StatusInternalServerError, "store_not_configured", errors.New("storage not configured"))

// HistoryRepo fronts the dilemmas_history table. It forwards the caller's
// bearer credential untouched and trusts the store to reject invalid ones;
// no ownership check happens here beyond the store's own row policies.
type HistoryRepo interface {
	Create(ctx context.Context, token string, in domain.AnalysisInput) (*domain.AnalysisRecord, error)
	List(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error)
	Delete(ctx context.Context, token, id string) error
	ExportAll(ctx context.Context, token, userID string) ([]*domain.AnalysisRecord, error)
}

type historyRepo struct {
	store supabase.Client
	log   *logger.Logger
}

func NewHistoryRepo(store supabase.Client, baseLog *logger.Logger) HistoryRepo {
	repoLog := baseLog.With("repo", "HistoryRepo")
	return &historyRepo{store: store, log: repoLog}
}

func (hr *historyRepo) Create(ctx context.Context, token string, in domain.AnalysisInput) (*domain.AnalysisRecord, error) {
	if hr.store == nil {
		return nil, ErrStoreNotConfigured
	}

	raw, err := hr.store.InsertRow(ctx, token, historyTable, in)
	if err != nil {
		return nil, err
	}
	var rec domain.AnalysisRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (hr *historyRepo) List(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
	if hr.store == nil {
		return nil, -1, ErrStoreNotConfigured
	}

	q := supabase.Query{
		Order:  "created_at",
		Desc:   true,
		Limit:  clampLimit(limit),
		Offset: clampOffset(offset),
		Count:  true,
	}
	if userID != "" {
		q.Filters = map[string]string{"user_id": userID}
	}

	raw, total, err := hr.store.SelectRows(ctx, token, historyTable, q)
	if err != nil {
		return nil, -1, err
	}
	records := []*domain.AnalysisRecord{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, -1, err
	}
	return records, total, nil
}

func (hr *historyRepo) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apierr.Validation("id required")
	}
	if hr.store == nil {
		return ErrStoreNotConfigured
	}
	// Deleting an id that no longer exists is deliberately not an error.
	return hr.store.DeleteRows(ctx, token, historyTable, "id", id)
}

func (hr *historyRepo) ExportAll(ctx context.Context, token, userID string) ([]*domain.AnalysisRecord, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id required")
	}
	if hr.store == nil {
		return nil, ErrStoreNotConfigured
	}

	q := supabase.Query{
		Filters: map[string]string{"user_id": userID},
		Order:   "created_at",
		Desc:    true,
	}
	raw, _, err := hr.store.SelectRows(ctx, token, historyTable, q)
	if err != nil {
		return nil, err
	}
	records := []*domain.AnalysisRecord{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func clampLimit(limit int) int {
	if limit < minListLimit {
		return minListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// ParseListLimit maps a raw limit query value to its effective form: absent or
// non-numeric falls back to the default, out-of-range clamps to the nearest
// bound.
func ParseListLimit(raw string) int {
	if raw == "" {
		return defaultListLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultListLimit
	}
	return clampLimit(n)
}

// ParseListOffset maps a raw offset query value to its effective form; absent,
// non-numeric, or negative means 0.
func ParseListOffset(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return clampOffset(n)
}
