package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

func loadTestConfig(t *testing.T) config.Config {
	t.Helper()
	t.Setenv("APP_ENV", config.EnvDev)
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestNewRuntime_ServesHealthz(t *testing.T) {
	cfg := loadTestConfig(t)

	rt, err := NewRuntime(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	if rt.Server.Addr != cfg.HTTPAddr {
		t.Fatalf("unexpected addr %q", rt.Server.Addr)
	}
	if rt.Warmup == nil {
		t.Fatalf("expected warmup service")
	}

	rec := httptest.NewRecorder()
	rt.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", rec.Code)
	}
}

func TestNewRuntime_RejectsBadSeasonRule(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.SeasonStart = "13-40"

	if _, err := NewRuntime(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for invalid season start")
	}
}

func TestNewRuntime_RejectsBadCollationLocale(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.CollationLocale = "not a locale!"

	if _, err := NewRuntime(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for invalid collation locale")
	}
}
