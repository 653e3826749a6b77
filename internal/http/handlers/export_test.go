package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/yungbote/aletheia-backend/internal/domain"
)

func TestExportRequiresUserID(t *testing.T) {
	router := newTestRouter(http.MethodGet, "/export", NewExportHandler(&fakeHistoryRepo{}).Export)

	w := perform(t, router, http.MethodGet, "/export", requestOpts{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["error"] != "user_id required" {
		t.Fatalf("body: got=%v", body)
	}
	if w.Header().Get("Content-Disposition") != "" {
		t.Fatal("failure response must not carry an attachment header")
	}
}

func TestExportDownloadsFullHistory(t *testing.T) {
	repo := &fakeHistoryRepo{
		exportAll: func(ctx context.Context, token, userID string) ([]*domain.AnalysisRecord, error) {
			if userID != "u1" {
				t.Fatalf("user_id: got=%q", userID)
			}
			if token != "tok" {
				t.Fatalf("token: got=%q", token)
			}
			return []*domain.AnalysisRecord{
				{ID: "b", CustomText: strPtr("newer")},
				{ID: "a", CustomText: strPtr("older")},
			}, nil
		},
	}
	router := newTestRouter(http.MethodGet, "/export", NewExportHandler(repo).Export)

	w := perform(t, router, http.MethodGet, "/export?user_id=u1", requestOpts{bearer: "tok"})
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=aletheia-export-u1.json" {
		t.Fatalf("content-disposition: got=%q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type: got=%q", got)
	}
	// Indented output, not compact.
	if !strings.Contains(w.Body.String(), "\n  ") {
		t.Fatalf("body not indented: %q", w.Body.String())
	}

	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("ok: got=%v", body["ok"])
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items: got=%v", body["items"])
	}
	first := items[0].(map[string]any)
	if first["id"] != "b" {
		t.Fatalf("item order: got first=%v", first["id"])
	}
}
