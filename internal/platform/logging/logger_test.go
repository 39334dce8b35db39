package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s, want %s", raw, got, want)
		}
	}
}

func TestNewJSONWriter_WritesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(LevelWarn, &buf).Named("fetch")

	logger.Info("skipped line", "k", "v")
	logger.Warn("upstream fetch failed", "locator", "https://example.test/teams", "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "skipped line") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	for _, want := range []string{`"msg":"upstream fetch failed"`, `"logger":"fetch"`, `"locator":"https://example.test/teams"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output: %s", want, out)
		}
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields([]any{"a", 1, 2, "b"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected non-string key to become arg, got %q", fields[1].Key)
	}
}

func TestWithCores_TeesEntries(t *testing.T) {
	var primary, secondary bytes.Buffer
	extra := zapcore.NewCore(zapcore.NewJSONEncoder(EncoderConfig()), zapcore.AddSync(&secondary), LevelError)
	logger := NewJSONWriter(LevelInfo, &primary).WithCores(extra)

	logger.Info("only primary")
	logger.Error("both sinks")

	if !strings.Contains(primary.String(), "only primary") || !strings.Contains(primary.String(), "both sinks") {
		t.Fatalf("unexpected primary output: %s", primary.String())
	}
	if strings.Contains(secondary.String(), "only primary") || !strings.Contains(secondary.String(), "both sinks") {
		t.Fatalf("unexpected secondary output: %s", secondary.String())
	}
}
