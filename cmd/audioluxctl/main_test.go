package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// stubBackend answers the device routes and remembers the last PUT body.
type stubBackend struct {
	mu      sync.Mutex
	lastPut map[string]string
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			s.record(r)
			_, _ = io.WriteString(w, `{"message":"Settings saved."}`)
			return
		}
		_, _ = io.WriteString(w, "{\n  \"noise\": 10,\n  \"ledCount\": 50\n}")
	})
	mux.HandleFunc("/api/patterns", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `["trail","comet"]`)
	})
	mux.HandleFunc("/api/pattern", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `"trail"`)
	})
	mux.HandleFunc("/api/pattern/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		_, _ = io.WriteString(w, `{"message":"Pattern saved."}`)
	})
	mux.HandleFunc("/api/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	return mux
}

func (s *stubBackend) record(r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastPut == nil {
		s.lastPut = map[string]string{}
	}
	s.lastPut[r.URL.Path] = string(b)
}

func (s *stubBackend) put(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPut[path]
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--service-url", url}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_Reads(t *testing.T) {
	srv := httptest.NewServer((&stubBackend{}).handler())
	defer srv.Close()

	cases := map[string]string{
		"get-settings":  `{"noise":10,"ledCount":50}` + "\n",
		"list-patterns": `["trail","comet"]` + "\n",
		"get-pattern":   `"trail"` + "\n",
		"history":       `[]` + "\n",
	}
	for cmd, want := range cases {
		got, err := run(t, srv.URL, cmd)
		if err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
		if got != want {
			t.Fatalf("%s: got %q want %q", cmd, got, want)
		}
	}
}

func TestCLI_SetPattern(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	out, err := run(t, srv.URL, "set-pattern", "comet")
	if err != nil {
		t.Fatalf("set-pattern failed: %v", err)
	}
	if !strings.Contains(out, "Pattern saved.") {
		t.Fatalf("unexpected output %q", out)
	}
	if got := stub.put("/api/pattern/"); got != `{"pattern":"comet"}` {
		t.Fatalf("unexpected body %s", got)
	}

	if _, err := run(t, srv.URL, "set-pattern", `{"name":"x"}`); err != nil {
		t.Fatalf("set-pattern object failed: %v", err)
	}
	if got := stub.put("/api/pattern/"); got != `{"pattern":{"name":"x"}}` {
		t.Fatalf("object value not forwarded as JSON: %s", got)
	}
}

func TestCLI_SetSettings(t *testing.T) {
	stub := &stubBackend{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	if _, err := run(t, srv.URL, "set-settings", "--json", `{"noise":3}`); err != nil {
		t.Fatalf("set-settings failed: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal([]byte(stub.put("/api/settings")), &got); err != nil || got["noise"] != 3 {
		t.Fatalf("unexpected settings body %q", stub.put("/api/settings"))
	}

	if _, err := run(t, srv.URL, "set-settings", "--json", `{nope`); err == nil {
		t.Fatalf("expected invalid JSON to be rejected")
	}
	if _, err := run(t, srv.URL, "set-settings"); err == nil {
		t.Fatalf("expected missing --json to fail")
	}
}

func TestCLI_BackendErrorFails(t *testing.T) {
	srv := httptest.NewServer((&stubBackend{}).handler())
	defer srv.Close()

	if _, err := run(t, srv.URL, "health"); err == nil {
		t.Fatalf("expected 503 to fail the command")
	}
}

func TestCLI_ServiceURLFromEnv(t *testing.T) {
	t.Setenv("AUDIOLUX_SERVICE_URL", "http://device.local:9000")
	root := NewRootCmd()
	f := root.PersistentFlags().Lookup("service-url")
	if f == nil || f.DefValue != "http://device.local:9000" {
		t.Fatalf("service-url default not taken from env: %+v", f)
	}
}

func TestParseValue(t *testing.T) {
	if _, ok := parseValue("trail").(string); !ok {
		t.Fatalf("bare word should be a string")
	}
	if _, ok := parseValue(`"trail"`).(json.RawMessage); !ok {
		t.Fatalf("quoted JSON should pass through")
	}
	if _, ok := parseValue("42").(json.RawMessage); !ok {
		t.Fatalf("number should pass through as JSON")
	}
}
