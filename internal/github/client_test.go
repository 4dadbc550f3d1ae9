package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient points a client at a test server and replaces every
// sleep with a recorder.
func newTestClient(serverURL string) (*Client, *[]time.Duration) {
	c := NewClient("ghp_test")
	c.baseURL = serverURL

	var slept []time.Duration
	c.sleep = func(d time.Duration) { slept = append(slept, d) }

	limiter, _ := newTestLimiter(time.Unix(1_700_000_000, 0))
	c.limiter = limiter

	return c, &slept
}

func TestGetRetriesRateLimitSignals(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"429 Too Many Requests", http.StatusTooManyRequests},
		{"403 Forbidden", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls <= 3 {
					w.WriteHeader(tt.status)
					return
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			c, slept := newTestClient(server.URL)

			resp, err := c.Get(context.Background(), server.URL+"/orgs/acme/repos")
			if err != nil {
				t.Fatalf("Get() unexpected error: %v", err)
			}

			if string(resp.Body) != `{"ok":true}` {
				t.Errorf("Get() body = %q, want the 200 payload", resp.Body)
			}
			if calls != 4 {
				t.Errorf("server saw %d calls, want 4", calls)
			}

			wantSleeps := []time.Duration{60 * time.Second, 120 * time.Second, 240 * time.Second}
			if len(*slept) != len(wantSleeps) {
				t.Fatalf("recorded %d sleeps (%v), want %d", len(*slept), *slept, len(wantSleeps))
			}
			for i, want := range wantSleeps {
				if (*slept)[i] != want {
					t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want)
				}
			}
		})
	}
}

func TestGetExhaustsAttempts(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, slept := newTestClient(server.URL)

	_, err := c.Get(context.Background(), server.URL+"/orgs/acme/repos")
	if err == nil {
		t.Fatal("Get() expected error after exhausting attempts")
	}

	if calls != MaxAttempts {
		t.Errorf("server saw %d calls, want %d", calls, MaxAttempts)
	}
	wantSleeps := []time.Duration{60 * time.Second, 120 * time.Second, 240 * time.Second, 480 * time.Second, 960 * time.Second}
	if len(*slept) != len(wantSleeps) {
		t.Fatalf("recorded %d sleeps (%v), want %d", len(*slept), *slept, len(wantSleeps))
	}
	for i, want := range wantSleeps {
		if (*slept)[i] != want {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want)
		}
	}
}

func TestGetPermanentStatusNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(status)
			}))
			defer server.Close()

			c, slept := newTestClient(server.URL)

			_, err := c.Get(context.Background(), server.URL+"/orgs/acme/repos")

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("Get() error = %v, want *StatusError", err)
			}
			if statusErr.Status != status {
				t.Errorf("StatusError.Status = %d, want %d", statusErr.Status, status)
			}
			if calls != 1 {
				t.Errorf("server saw %d calls, want 1 (no retry)", calls)
			}
			if len(*slept) != 0 {
				t.Errorf("recorded sleeps %v, want none", *slept)
			}
		})
	}
}

func TestGetSendsRequiredHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ghp_test" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer ghp_test")
		}
		if got := r.Header.Get("Accept"); got != AcceptHeader {
			t.Errorf("Accept = %q, want %q", got, AcceptHeader)
		}
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("User-Agent = %q, want %q", got, UserAgent)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)

	if _, err := c.Get(context.Background(), server.URL+"/orgs/acme/repos"); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
}

func TestGetPausesAfterSuccessWhenQuotaExhausted(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRateRemaining, "0")
		w.Header().Set(HeaderRateReset, fmt.Sprintf("%d", now.Add(30*time.Second).Unix()))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)
	limiter, limiterSlept := newTestLimiter(now)
	c.limiter = limiter

	if _, err := c.Get(context.Background(), server.URL+"/orgs/acme/repos"); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}

	if len(*limiterSlept) != 1 {
		t.Fatalf("limiter recorded %d sleeps, want 1", len(*limiterSlept))
	}
	if got := (*limiterSlept)[0]; got < 35*time.Second {
		t.Errorf("limiter slept %v, want >= 35s", got)
	}
}
