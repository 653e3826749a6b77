package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/yungbote/aletheia-backend/internal/domain"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

func TestHistoryCreateResponseShape(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	repo := &fakeHistoryRepo{
		create: func(ctx context.Context, token string, in domain.AnalysisInput) (*domain.AnalysisRecord, error) {
			if token != "caller-token" {
				t.Fatalf("token: got=%q", token)
			}
			return &domain.AnalysisRecord{
				ID:         "rec-1",
				CustomText: in.CustomText,
				CreatedAt:  created,
			}, nil
		},
	}
	router := newTestRouter(http.MethodPost, "/history", NewHistoryHandler(repo).Create)

	w := perform(t, router, http.MethodPost, "/history", requestOpts{
		body:   `{"custom_text":"my dilemma"}`,
		bearer: "caller-token",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("ok: got=%v", body["ok"])
	}
	item, ok := body["item"].(map[string]any)
	if !ok {
		t.Fatalf("item: got=%T", body["item"])
	}
	if item["id"] != "rec-1" || item["custom_text"] != "my dilemma" {
		t.Fatalf("item: got=%v", item)
	}
	// Unset optional columns serialize as explicit nulls.
	for _, col := range []string{"user_id", "dilemma_key", "utilitarian_html", "deontologist_html", "virtue_ethicist_html"} {
		v, present := item[col]
		if !present {
			t.Fatalf("item missing %q", col)
		}
		if v != nil {
			t.Fatalf("item %q: want=null got=%v", col, v)
		}
	}
}

func TestHistoryCreateRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(http.MethodPost, "/history", NewHistoryHandler(&fakeHistoryRepo{}).Create)

	w := perform(t, router, http.MethodPost, "/history", requestOpts{body: `{"custom_text":`})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["error"] != "invalid json body" {
		t.Fatalf("body: got=%v", body)
	}
}

func TestHistoryListParsesPaginationParams(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "?limit=50&offset=40", 50, 40},
		{"non numeric", "?limit=abc&offset=xyz", 20, 0},
		{"clamped", "?limit=9999&offset=-3", 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeHistoryRepo{
				list: func(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
					if limit != tc.wantLimit || offset != tc.wantOffset {
						t.Fatalf("pagination: want limit=%d offset=%d, got limit=%d offset=%d", tc.wantLimit, tc.wantOffset, limit, offset)
					}
					return []*domain.AnalysisRecord{}, 0, nil
				},
			}
			router := newTestRouter(http.MethodGet, "/history", NewHistoryHandler(repo).List)
			w := perform(t, router, http.MethodGet, "/history"+tc.query, requestOpts{})
			if w.Code != http.StatusOK {
				t.Fatalf("status: want=200 got=%d", w.Code)
			}
		})
	}
}

func TestHistoryListEnvelope(t *testing.T) {
	repo := &fakeHistoryRepo{
		list: func(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
			if userID != "u1" {
				t.Fatalf("user_id: got=%q", userID)
			}
			return []*domain.AnalysisRecord{{ID: "a"}, {ID: "b"}}, 57, nil
		},
	}
	router := newTestRouter(http.MethodGet, "/history", NewHistoryHandler(repo).List)

	w := perform(t, router, http.MethodGet, "/history?user_id=u1", requestOpts{})
	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("ok: got=%v", body["ok"])
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items: got=%v", body["items"])
	}
	if body["total"] != float64(57) {
		t.Fatalf("total: want=57 got=%v", body["total"])
	}
}

func TestHistoryListUnknownTotalIsNull(t *testing.T) {
	repo := &fakeHistoryRepo{
		list: func(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
			return []*domain.AnalysisRecord{}, -1, nil
		},
	}
	router := newTestRouter(http.MethodGet, "/history", NewHistoryHandler(repo).List)

	w := perform(t, router, http.MethodGet, "/history", requestOpts{})
	body := decodeBody(t, w)
	total, present := body["total"]
	if !present {
		t.Fatal("total missing")
	}
	if total != nil {
		t.Fatalf("total: want=null got=%v", total)
	}
}

func TestHistoryListStoreNotConfigured(t *testing.T) {
	repo := &fakeHistoryRepo{
		list: func(ctx context.Context, token, userID string, limit, offset int) ([]*domain.AnalysisRecord, int64, error) {
			return nil, -1, repos.ErrStoreNotConfigured
		},
	}
	router := newTestRouter(http.MethodGet, "/history", NewHistoryHandler(repo).List)

	w := perform(t, router, http.MethodGet, "/history", requestOpts{})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "storage not configured" {
		t.Fatalf("error: got=%v", body["error"])
	}
}

func TestHistoryDeleteRequiresIDParam(t *testing.T) {
	router := newTestRouter(http.MethodDelete, "/history", NewHistoryHandler(&fakeHistoryRepo{}).Delete)

	w := perform(t, router, http.MethodDelete, "/history", requestOpts{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["error"] != "id required" {
		t.Fatalf("body: got=%v", body)
	}
}

func TestHistoryDeleteOK(t *testing.T) {
	repo := &fakeHistoryRepo{
		delete: func(ctx context.Context, token, id string) error {
			if id != "rec-1" {
				t.Fatalf("id: got=%q", id)
			}
			return nil
		},
	}
	router := newTestRouter(http.MethodDelete, "/history", NewHistoryHandler(repo).Delete)

	w := perform(t, router, http.MethodDelete, "/history?id=rec-1", requestOpts{})
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", w.Code)
	}
	body := decodeBody(t, w)
	if len(body) != 1 || body["ok"] != true {
		t.Fatalf("body: got=%v", body)
	}
}
