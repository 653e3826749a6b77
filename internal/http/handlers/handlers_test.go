package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.AttachBearer())
	router.Handle(method, path, h)
	return router
}

type requestOpts struct {
	body   string
	bearer string
}

func perform(t *testing.T, router *gin.Engine, method, target string, opts requestOpts) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if opts.body != "" {
		body = strings.NewReader(opts.body)
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if opts.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+opts.bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func strPtr(s string) *string { return &s }

// fakeHistoryRepo scripts repos.HistoryRepo per test.
type fakeHistoryRepo struct {
	create    func(ctx context.Context, token string, in domain.AnalysisInput) (*domain.AnalysisRecord, error)
	list      func(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error)
	delete    func(ctx context.Context, token, id string) error
	exportAll func(ctx context.Context, token, userID string) ([]*domain.AnalysisRecord, error)
}

func (f *fakeHistoryRepo) Create(ctx context.Context, token string, in domain.AnalysisInput) (*domain.AnalysisRecord, error) {
	return f.create(ctx, token, in)
}

func (f *fakeHistoryRepo) List(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
	return f.list(ctx, token, userID, limit, offset)
}

func (f *fakeHistoryRepo) Delete(ctx context.Context, token, id string) error {
	return f.delete(ctx, token, id)
}

func (f *fakeHistoryRepo) ExportAll(ctx context.Context, token, userID string) ([]*domain.AnalysisRecord, error) {
	return f.exportAll(ctx, token, userID)
}

// fakeSettingsRepo scripts repos.SettingsRepo per test.
type fakeSettingsRepo struct {
	get    func(ctx context.Context, token, userID string) (*domain.UserSettings, error)
	upsert func(ctx context.Context, token, userID string, in domain.SettingsInput) (*domain.UserSettings, error)
}

func (f *fakeSettingsRepo) Get(ctx context.Context, token, userID string) (*domain.UserSettings, error) {
	return f.get(ctx, token, userID)
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, token, userID string, in domain.SettingsInput) (*domain.UserSettings, error) {
	return f.upsert(ctx, token, userID, in)
}
