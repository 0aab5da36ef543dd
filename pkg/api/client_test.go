package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/vita/pkg/timeutil"
)

func TestAuthenticateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostFormValue("username") != "me@example.com" {
			t.Errorf("unexpected username: %q", r.PostFormValue("username"))
		}
		if r.PostFormValue("password") != "hunter2" {
			t.Errorf("unexpected password")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123", "token_type": "bearer"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Authenticate(context.Background(), "me@example.com", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestAuthenticateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Authenticate(context.Background(), "me@example.com", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Reason != "Incorrect email or password" {
		t.Fatalf("expected server reason, got %q", authErr.Reason)
	}
	// Login rejections are not the session-invalid class.
	if IsUnauthorized(err) {
		t.Fatalf("login rejection should not be ErrUnauthorized")
	}
}

func TestCurrentUserUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CurrentUser(context.Background(), "stale-token")
	if !IsUnauthorized(err) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCurrentUserSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(User{ID: 7, Email: "me@example.com", IsActive: true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.CurrentUser(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "me@example.com" || u.ID != 7 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestCreateEntryMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/entries/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart body: %v", err)
		}
		if got := r.PostFormValue("entry_text"); got != "Weight 80 kg" {
			t.Errorf("unexpected entry_text: %q", got)
		}
		if got := r.PostFormValue("target_date_str"); got != "2026-08-27" {
			t.Errorf("unexpected target_date_str: %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "entry_text": "Weight 80 kg", "entry_type": "weight",
			"value": 80.0, "unit": "kg", "timestamp": "2026-08-27T08:00:00Z",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	e, err := c.CreateEntry(context.Background(), "tok", "Weight 80 kg", timeutil.Date("2026-08-27"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != 1 || e.Type != "weight" || e.Value == nil || *e.Value != 80 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestDailySummarySendsOffsetPerRequest(t *testing.T) {
	var offsets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offsets = append(offsets, r.URL.Query().Get("utc_offset_minutes"))
		if got := r.URL.Query().Get("target_date_str"); got != "2026-08-27" {
			t.Errorf("unexpected date: %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total_calories": 1800.0})
	}))
	defer srv.Close()

	c := New(srv.URL)
	for i := 0; i < 2; i++ {
		s, err := c.DailySummary(context.Background(), "tok", timeutil.Date("2026-08-27"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Date != timeutil.Date("2026-08-27") {
			t.Fatalf("expected requested date backfilled, got %q", s.Date)
		}
	}
	if len(offsets) != 2 || offsets[0] == "" || offsets[1] == "" {
		t.Fatalf("expected an offset on every request, got %v", offsets)
	}
}

func TestDeleteEntryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "database unavailable"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteEntry(context.Background(), "tok", 9)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError || statusErr.Detail != "database unavailable" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if IsUnauthorized(err) {
		t.Fatalf("server errors are not the session-invalid class")
	}
}

func TestTrendsRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date_str") != "2026-07-29" || q.Get("end_date_str") != "2026-08-27" {
			t.Errorf("unexpected range: %v", q)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"start_date": "2026-07-29",
			"end_date":   "2026-08-27",
			"weight_trends": []map[string]any{
				{"timestamp": "2026-08-01T08:00:00Z", "value": 80.5},
			},
			"steps_trends": []map[string]any{},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	r, err := c.Trends(context.Background(), "tok", timeutil.Date("2026-07-29"), timeutil.Date("2026-08-27"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.WeightTrends) != 1 || r.WeightTrends[0].Value != 80.5 {
		t.Fatalf("unexpected report: %+v", r)
	}
}
