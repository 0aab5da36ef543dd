// Package api is the typed client for the external health-logging HTTP API.
// The client holds no session state; every authenticated call takes the
// token explicitly so ownership of the credential stays with the session
// manager.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
)

// DefaultBaseURL matches a local development server.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Client talks to one API server.
type Client struct {
	base   string
	client *http.Client
}

// New creates a client for the given base URL. An empty base falls back to
// DefaultBaseURL. Timeouts live at the transport layer; the caller treats
// them like any other request failure.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Authenticate exchanges credentials for a session token. A non-2xx
// response becomes an AuthError carrying the server's reason; the caller's
// session and credential store are unaffected.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := errorDetail(resp)
		if reason == "" {
			reason = "invalid email or password"
		}
		return "", &AuthError{Reason: reason}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("malformed login response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return tok.AccessToken, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/signup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var u User
	if err := c.do(req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CurrentUser resolves the identity behind a token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	req, err := c.get(ctx, token, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var u User
	if err := c.do(req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateEntry submits a new log entry. The body is multipart so an optional
// food photo can ride along with the text.
func (c *Client) CreateEntry(ctx context.Context, token, text string, on timeutil.Date, imagePath string) (*entry.Entry, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("entry_text", text); err != nil {
		return nil, err
	}
	if err := w.WriteField("target_date_str", on.String()); err != nil {
		return nil, err
	}
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer func() { _ = f.Close() }()
		part, err := w.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/entries/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	bearer(req, token)

	var e entry.Entry
	if err := c.do(req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEntries returns all entries for the session's user.
func (c *Client) ListEntries(ctx context.Context, token string) ([]*entry.Entry, error) {
	req, err := c.get(ctx, token, "/entries/", nil)
	if err != nil {
		return nil, err
	}
	var entries []*entry.Entry
	if err := c.do(req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntry applies a partial update and returns the server's new
// representation of the entry.
func (c *Client) UpdateEntry(ctx context.Context, token string, id int64, fields UpdateFields) (*entry.Entry, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.base+"/entries/"+strconv.FormatInt(id, 10), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	bearer(req, token)

	var e entry.Entry
	if err := c.do(req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEntry removes the entry with the given id.
func (c *Client) DeleteEntry(ctx context.Context, token string, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/entries/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	bearer(req, token)
	return c.do(req, nil)
}

// DailySummary fetches the aggregate for one local calendar day. The UTC
// offset is recomputed on every call; it can change under DST or travel.
func (c *Client) DailySummary(ctx context.Context, token string, on timeutil.Date) (*DailySummary, error) {
	q := url.Values{}
	q.Set("target_date_str", on.String())
	q.Set("utc_offset_minutes", strconv.Itoa(timeutil.UTCOffsetMinutes(time.Now())))

	req, err := c.get(ctx, token, "/reports/summary/daily", q)
	if err != nil {
		return nil, err
	}
	var s DailySummary
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	if s.Date == "" {
		s.Date = on
	}
	return &s, nil
}

// WeeklySummary fetches the aggregate for the current week.
func (c *Client) WeeklySummary(ctx context.Context, token string) (*WeeklySummary, error) {
	req, err := c.get(ctx, token, "/reports/summary/weekly", nil)
	if err != nil {
		return nil, err
	}
	var s WeeklySummary
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Trends fetches the weight and steps series. Empty bounds fall back to the
// server default of the last thirty days.
func (c *Client) Trends(ctx context.Context, token string, from, to timeutil.Date) (*TrendReport, error) {
	q := url.Values{}
	if from != "" {
		q.Set("start_date_str", from.String())
	}
	if to != "" {
		q.Set("end_date_str", to.String())
	}
	req, err := c.get(ctx, token, "/reports/trends", q)
	if err != nil {
		return nil, err
	}
	var r TrendReport
	if err := c.do(req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) get(ctx context.Context, token, path string, q url.Values) (*http.Request, error) {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	bearer(req, token)
	return req, nil
}

// do runs an authenticated request. A 401 maps to ErrUnauthorized so the
// session manager can self-invalidate; any other non-2xx becomes a
// StatusError shown inline by whichever surface issued the call.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		if detail := errorDetail(resp); detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: errorDetail(resp)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

func bearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// errorDetail pulls the server's {"detail": "..."} message when present.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}
