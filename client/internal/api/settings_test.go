package api

import (
	"context"
	"net/http"
	"testing"
)

func TestGetSettings_Success(t *testing.T) {
	t.Parallel()
	body := `{"noise":10,"compression":90,"loFreqHue":55,"hiFreqHue":200,"ledCount":50}`
	srv, got := recordingServer(t, http.StatusOK, body)
	s, err := GetSettings(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("GetSettings error: %v", err)
	}
	if string(s) != body {
		t.Fatalf("body changed in transit: %s", s)
	}
	rec := got.all()[0]
	if rec.Method != http.MethodGet || rec.Path != "/api/settings" || len(rec.Body) != 0 {
		t.Fatalf("unexpected request %+v", rec)
	}
}

func TestSetSettings_Envelope(t *testing.T) {
	t.Parallel()
	srv, got := recordingServer(t, http.StatusOK, `{"message":"Settings saved."}`)
	resp, err := SetSettings(context.Background(), srv.Client(), srv.URL, map[string]int{"noise": 1})
	if err != nil {
		t.Fatalf("SetSettings error: %v", err)
	}
	rec := got.all()[0]
	if rec.Method != http.MethodPut || rec.Path != "/api/settings" || string(rec.Body) != `{"noise":1}` {
		t.Fatalf("unexpected request %+v", rec)
	}
	if resp.Status != http.StatusOK || string(resp.Data) != `{"message":"Settings saved."}` {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestSettings_Errors(t *testing.T) {
	t.Parallel()
	srv, _ := recordingServer(t, http.StatusInternalServerError, `oops`)
	if _, err := GetSettings(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for GetSettings non-200")
	}
	if _, err := SetSettings(context.Background(), srv.Client(), srv.URL, map[string]int{}); err == nil {
		t.Fatal("expected error for SetSettings non-200")
	}
	hc := &http.Client{Transport: &errRT{}}
	if _, err := GetSettings(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for GetSettings")
	}
}

func TestEndpoint(t *testing.T) {
	t.Parallel()
	if got := Endpoint("http://localhost:8000", "settings"); got != "http://localhost:8000/api/settings" {
		t.Fatalf("unexpected endpoint %s", got)
	}
	if got := Endpoint("http://localhost:8000", "pattern/"); got != "http://localhost:8000/api/pattern/" {
		t.Fatalf("unexpected endpoint %s", got)
	}
}
