package api

import (
	"context"
	"net/http"
	"testing"
)

func TestGetHistory_Success(t *testing.T) {
	t.Parallel()
	srv, got := recordingServer(t, http.StatusOK, `["Saved pattern: trail\n"]`)
	h, err := GetHistory(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("GetHistory error: %v", err)
	}
	if string(h) != `["Saved pattern: trail\n"]` {
		t.Fatalf("unexpected history %s", h)
	}
	if got.all()[0].Path != "/api/history" {
		t.Fatalf("unexpected path %s", got.all()[0].Path)
	}
}

func TestHealth_Success(t *testing.T) {
	t.Parallel()
	srv, got := recordingServer(t, http.StatusOK, `{"status":"healthy"}`)
	if _, err := Health(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if got.all()[0].Path != "/api/health" {
		t.Fatalf("unexpected path %s", got.all()[0].Path)
	}
}
