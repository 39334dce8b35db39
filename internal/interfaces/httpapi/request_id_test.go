package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	idgen "github.com/riskibarqy/courtside/internal/platform/id"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestID(idgen.NewShortGenerator(), next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nba/scoreboard", nil))
	generated := rec.Header().Get(requestIDHeader)
	if len(generated) != 16 || seen != generated {
		t.Fatalf("expected generated id in header and context, got header=%q ctx=%q", generated, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/nba/scoreboard", nil)
	req.Header.Set(requestIDHeader, "edge-abc_123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "edge-abc_123" || seen != "edge-abc_123" {
		t.Fatalf("expected inbound id to be echoed, got header=%q ctx=%q", got, seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/nba/scoreboard", nil)
	req.Header.Set(requestIDHeader, "bad id with spaces")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got == "bad id with spaces" || got == "" {
		t.Fatalf("expected malformed id to be replaced, got %q", got)
	}
}
