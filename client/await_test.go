package client

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestAsync_ReturnsBeforeResponse(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = io.WriteString(w, `"trail"`)
	}))

	f := c.GetPatternAsync(context.Background())
	select {
	case <-f.Done():
		t.Fatalf("future settled before the backend answered")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	p, err := f.Await(context.Background())
	if err != nil || string(p) != `"trail"` {
		t.Fatalf("await: %s %v", p, err)
	}
}

func TestAsync_IndependentOutcomes(t *testing.T) {
	slowSettings := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/settings":
			<-slowSettings
			_, _ = io.WriteString(w, `{"noise":10}`)
		case "/api/patterns":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/pattern/":
			_, _ = io.WriteString(w, `{"message":"Pattern saved."}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	ctx := context.Background()

	settings := c.GetSettingsAsync(ctx)
	list := c.GetPatternListAsync(ctx)
	set := c.SetPatternAsync(ctx, "comet")

	// The failing list call settles while settings is still pending.
	if _, err := list.Await(ctx); err == nil {
		t.Fatalf("expected pattern list to fail")
	}
	if resp, err := set.Await(ctx); err != nil || resp.Status != http.StatusOK {
		t.Fatalf("set pattern: %+v %v", resp, err)
	}
	select {
	case <-settings.Done():
		t.Fatalf("settings settled before its response was released")
	default:
	}

	close(slowSettings)
	s, err := settings.Await(ctx)
	if err != nil || string(s) != `{"noise":10}` {
		t.Fatalf("settings: %s %v", s, err)
	}
}

func TestAsync_SupplementedOperations(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/settings":
			_, _ = io.WriteString(w, `{"message":"Settings saved."}`)
		case r.URL.Path == "/api/history":
			_, _ = io.WriteString(w, `["Saved settings: noise=3\n"]`)
		case r.URL.Path == "/api/health":
			_, _ = io.WriteString(w, `{"status":"healthy"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	ctx := context.Background()

	set := c.SetSettingsAsync(ctx, map[string]int{"noise": 3})
	history := c.GetHistoryAsync(ctx)
	health := c.HealthAsync(ctx)

	if resp, err := set.Await(ctx); err != nil || resp.Status != http.StatusOK {
		t.Fatalf("set settings: %+v %v", resp, err)
	}
	if h, err := history.Await(ctx); err != nil || string(h) != `["Saved settings: noise=3\n"]` {
		t.Fatalf("history: %s %v", h, err)
	}
	if h, err := health.Await(ctx); err != nil || string(h) != `{"status":"healthy"}` {
		t.Fatalf("health: %s %v", h, err)
	}
}
