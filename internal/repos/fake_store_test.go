package repos

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

// fakeStore implements supabase.Client with per-call hooks so each test can
// script exactly the one operation it exercises.
type fakeStore struct {
	insertRow  func(ctx context.Context, token, table string, row any) (json.RawMessage, error)
	upsertRow  func(ctx context.Context, token, table, onConflict string, row any) (json.RawMessage, error)
	selectRows func(ctx context.Context, token, table string, q supabase.Query) (json.RawMessage, int64, error)
	deleteRows func(ctx context.Context, token, table, column, value string) error
	getUser    func(ctx context.Context, token string) (*supabase.AuthUser, error)
	sendOTP    func(ctx context.Context, email string) error
}

func (f *fakeStore) InsertRow(ctx context.Context, token, table string, row any) (json.RawMessage, error) {
	return f.insertRow(ctx, token, table, row)
}

func (f *fakeStore) UpsertRow(ctx context.Context, token, table, onConflict string, row any) (json.RawMessage, error) {
	return f.upsertRow(ctx, token, table, onConflict, row)
}

func (f *fakeStore) SelectRows(ctx context.Context, token, table string, q supabase.Query) (json.RawMessage, int64, error) {
	return f.selectRows(ctx, token, table, q)
}

func (f *fakeStore) DeleteRows(ctx context.Context, token, table, column, value string) error {
	return f.deleteRows(ctx, token, table, column, value)
}

func (f *fakeStore) GetUser(ctx context.Context, token string) (*supabase.AuthUser, error) {
	return f.getUser(ctx, token)
}

func (f *fakeStore) SendOTP(ctx context.Context, email string) error {
	return f.sendOTP(ctx, email)
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
