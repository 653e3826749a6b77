package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/aletheia-backend/internal/platform/logger"
)

const maxErrorBodyBytes = 1024

// Query describes a PostgREST row selection. Filters are equality only;
// that is the whole query surface this app needs.
type Query struct {
	Filters map[string]string
	Order   string
	Desc    bool
	Limit   int // <= 0 means no range header (full set)
	Offset  int
	Count   bool // request an exact total via Prefer: count=exact
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client is a thin handle to the hosted Supabase project: PostgREST for rows,
// GoTrue for identity. The caller's bearer credential is forwarded verbatim on
// every call; an empty token falls back to the anon key, matching the
// service's own client libraries.
type Client interface {
	InsertRow(ctx context.Context, token, table string, row any) (json.RawMessage, error)
	UpsertRow(ctx context.Context, token, table, onConflict string, row any) (json.RawMessage, error)
	SelectRows(ctx context.Context, token, table string, q Query) (json.RawMessage, int64, error)
	DeleteRows(ctx context.Context, token, table, column, value string) error
	GetUser(ctx context.Context, token string) (*AuthUser, error)
	SendOTP(ctx context.Context, email string) error
}

type client struct {
	log     *logger.Logger
	cfg     Config
	baseURL string
	http    *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &client{
		log:     log.With("client", "SupabaseClient"),
		cfg:     cfg,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func (c *client) InsertRow(ctx context.Context, token, table string, row any) (json.RawMessage, error) {
	const op = "insert"
	req, err := c.restRequest(ctx, op, http.MethodPost, table, "", row, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	return c.doJSON(op, req)
}

func (c *client) UpsertRow(ctx context.Context, token, table, onConflict string, row any) (json.RawMessage, error) {
	const op = "upsert"
	query := "on_conflict=" + url.QueryEscape(onConflict)
	req, err := c.restRequest(ctx, op, http.MethodPost, table, query, row, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	return c.doJSON(op, req)
}

func (c *client) SelectRows(ctx context.Context, token, table string, q Query) (json.RawMessage, int64, error) {
	const op = "select"
	req, err := c.restRequest(ctx, op, http.MethodGet, table, encodeQuery(q), nil, token)
	if err != nil {
		return nil, -1, err
	}
	if q.Count {
		req.Header.Set("Prefer", "count=exact")
	}
	if q.Limit > 0 {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", fmt.Sprintf("%d-%d", q.Offset, q.Offset+q.Limit-1))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, -1, opErr(op, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, -1, c.errorFrom(op, resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, opErr(op, resp.StatusCode, "", err)
	}

	total := int64(-1)
	if q.Count {
		total = parseContentRangeTotal(resp.Header.Get("Content-Range"))
	}
	return raw, total, nil
}

func (c *client) DeleteRows(ctx context.Context, token, table, column, value string) error {
	const op = "delete"
	query := url.QueryEscape(column) + "=eq." + url.QueryEscape(value)
	req, err := c.restRequest(ctx, op, http.MethodDelete, table, query, nil, token)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return opErr(op, 0, "", err)
	}
	defer resp.Body.Close()
	// Deleting rows that do not exist is still a 2xx from PostgREST.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(op, resp)
	}
	return nil
}

func (c *client) GetUser(ctx context.Context, token string) (*AuthUser, error) {
	const op = "get_user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, opErr(op, 0, "", err)
	}
	c.setAuthHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, opErr(op, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFrom(op, resp)
	}
	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, opErr(op, resp.StatusCode, "", err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (c *client) SendOTP(ctx context.Context, email string) error {
	const op = "send_otp"
	body, err := json.Marshal(map[string]any{
		"email":       email,
		"create_user": true,
	})
	if err != nil {
		return opErr(op, 0, "", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/otp", bytes.NewReader(body))
	if err != nil {
		return opErr(op, 0, "", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return opErr(op, 0, "", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(op, resp)
	}
	return nil
}

func (c *client) restRequest(ctx context.Context, op, method, table, rawQuery string, body any, token string) (*http.Request, error) {
	endpoint := c.baseURL + "/rest/v1/" + url.PathEscape(table)
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, opErr(op, 0, "", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, opErr(op, 0, "", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeaders(req, token)
	return req, nil
}

func (c *client) setAuthHeaders(req *http.Request, token string) {
	req.Header.Set("apikey", c.cfg.AnonKey)
	bearer := strings.TrimSpace(token)
	if bearer == "" {
		bearer = c.cfg.AnonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
}

func (c *client) doJSON(op string, req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, opErr(op, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFrom(op, resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, opErr(op, resp.StatusCode, "", err)
	}
	return raw, nil
}

// errorFrom extracts the store's own message so callers can surface it as-is.
func (c *client) errorFrom(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var payload struct {
		Message          string `json:"message"` // PostgREST
		Msg              string `json:"msg"`     // GoTrue
		ErrorDescription string `json:"error_description"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Msg != "":
			msg = payload.Msg
		case payload.ErrorDescription != "":
			msg = payload.ErrorDescription
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = fmt.Sprintf("store request failed (%d)", resp.StatusCode)
	}
	c.log.Warn("Store request failed", "op", op, "status", resp.StatusCode, "message", msg)
	return opErr(op, resp.StatusCode, msg, nil)
}

func encodeQuery(q Query) string {
	parts := []string{"select=*"}

	cols := make([]string, 0, len(q.Filters))
	for col := range q.Filters {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		parts = append(parts, url.QueryEscape(col)+"=eq."+url.QueryEscape(q.Filters[col]))
	}

	if q.Order != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		parts = append(parts, "order="+url.QueryEscape(q.Order+"."+dir))
	}
	return strings.Join(parts, "&")
}

// parseContentRangeTotal reads the total from a PostgREST Content-Range
// header, e.g. "0-19/57" or "*/0". Returns -1 when absent or malformed.
func parseContentRangeTotal(header string) int64 {
	header = strings.TrimSpace(header)
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return -1
	}
	totalPart := header[idx+1:]
	if totalPart == "" || totalPart == "*" {
		return -1
	}
	total, err := strconv.ParseInt(totalPart, 10, 64)
	if err != nil {
		return -1
	}
	return total
}
