package repos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/platform/apierr"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

const settingsTable = "user_settings"

// SettingsRepo fronts the user_settings table. Both operations require that
// the bearer credential maps to *some* authenticated identity at the store;
// the identity is not matched against the userID argument. The store's row
// policies are the enforcement point for ownership.
type SettingsRepo interface {
	// Get returns (nil, nil) when the user has no settings row yet; that is
	// a distinct outcome from a query failure.
	Get(ctx context.Context, token, userID string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, token, userID string, in domain.SettingsInput) (*domain.UserSettings, error)
}

type settingsRepo struct {
	store    supabase.Client
	defaults domain.SettingsDefaults
	log      *logger.Logger
	now      func() time.Time
}

func NewSettingsRepo(store supabase.Client, baseLog *logger.Logger) SettingsRepo {
	repoLog := baseLog.With("repo", "SettingsRepo")
	return &settingsRepo{
		store:    store,
		defaults: domain.DefaultSettings(),
		log:      repoLog,
		now:      time.Now,
	}
}

func (sr *settingsRepo) Get(ctx context.Context, token, userID string) (*domain.UserSettings, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id required")
	}
	if sr.store == nil {
		return nil, ErrStoreNotConfigured
	}
	if err := sr.requireIdentity(ctx, token); err != nil {
		return nil, err
	}

	q := supabase.Query{
		Filters: map[string]string{"user_id": userID},
		Limit:   1,
	}
	raw, _, err := sr.store.SelectRows(ctx, token, settingsTable, q)
	if err != nil {
		return nil, err
	}
	rows := []*domain.UserSettings{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (sr *settingsRepo) Upsert(ctx context.Context, token, userID string, in domain.SettingsInput) (*domain.UserSettings, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id required")
	}
	if sr.store == nil {
		return nil, ErrStoreNotConfigured
	}
	if err := sr.requireIdentity(ctx, token); err != nil {
		return nil, err
	}

	payload := domain.UserSettings{
		UserID:      userID,
		NotifEmail:  boolOrFalse(in.NotifEmail),
		NotifPush:   boolOrFalse(in.NotifPush),
		NotifWeekly: boolOrFalse(in.NotifWeekly),
		Theme:       strOr(in.Theme, sr.defaults.Theme),
		Language:    strOr(in.Language, sr.defaults.Language),
		Timezone:    strOr(in.Timezone, sr.defaults.Timezone),
		UpdatedAt:   sr.now().UTC(),
	}

	raw, err := sr.store.UpsertRow(ctx, token, settingsTable, "user_id", payload)
	if err != nil {
		return nil, err
	}
	var settings domain.UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// requireIdentity checks that the bearer credential resolves to an
// authenticated user at the store; it does not inspect the token itself.
func (sr *settingsRepo) requireIdentity(ctx context.Context, token string) error {
	user, err := sr.store.GetUser(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || user.ID == "" {
		return apierr.Unauthenticated("Not authenticated")
	}
	return nil
}

func boolOrFalse(v *bool) bool {
	return v != nil && *v
}

func strOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
