package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}

func TestLogger_IncludesStackAndServiceOnError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "audiolux-mock")
	log.Error().Stack().Err(errors.New("boom")).Msg("something failed")

	line := lastNonEmptyLine(buf.String())
	if line == "" {
		t.Fatalf("no output captured")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	if svc, ok := payload["service"].(string); !ok || svc != "audiolux-mock" {
		t.Fatalf("expected service=\"audiolux-mock\", got %v", payload["service"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Fatalf("expected level=\"error\", got %v", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", line)
	}
}

func TestLogger_InfoHasNoStack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "svc")
	log.Info().Str("route", "/api/pattern").Msg("ok")

	var payload map[string]any
	if err := json.Unmarshal([]byte(lastNonEmptyLine(buf.String())), &payload); err != nil {
		t.Fatalf("invalid json log: %v", err)
	}
	if _, ok := payload["stack"]; ok {
		t.Fatalf("info event should carry no stack")
	}
	if payload["route"] != "/api/pattern" {
		t.Fatalf("missing field: %v", payload)
	}
}
