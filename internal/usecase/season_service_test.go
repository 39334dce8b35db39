package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/season"
)

func TestSeasonService_Destination(t *testing.T) {
	t.Parallel()

	service, err := NewSeasonService(season.DefaultRule(), time.UTC)
	if err != nil {
		t.Fatalf("new season service: %v", err)
	}

	cases := []struct {
		name     string
		now      time.Time
		wantPath string
		inSeason bool
	}{
		{"opening day", time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), "/v1/ncaam/scoreboard", true},
		{"day before opening", time.Date(2025, time.October, 14, 23, 59, 0, 0, time.UTC), "/v1/wnba/scoreboard", false},
		{"new year", time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC), "/v1/ncaam/scoreboard", true},
		{"closing day", time.Date(2026, time.April, 15, 23, 0, 0, 0, time.UTC), "/v1/ncaam/scoreboard", true},
		{"day after closing", time.Date(2026, time.April, 16, 0, 0, 0, 0, time.UTC), "/v1/wnba/scoreboard", false},
		{"summer", time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC), "/v1/wnba/scoreboard", false},
	}

	for _, tc := range cases {
		got := service.Destination(context.Background(), tc.now)
		if got.Path != tc.wantPath || got.InSeason != tc.inSeason {
			t.Fatalf("%s: got %+v, want path=%s inSeason=%v", tc.name, got, tc.wantPath, tc.inSeason)
		}
		if path := service.RedirectPath(context.Background(), tc.now); path != tc.wantPath {
			t.Fatalf("%s: redirect path %s, want %s", tc.name, path, tc.wantPath)
		}
	}
}

func TestSeasonService_EvaluatesDayInLocation(t *testing.T) {
	t.Parallel()

	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	service, err := NewSeasonService(season.DefaultRule(), eastern)
	if err != nil {
		t.Fatalf("new season service: %v", err)
	}

	// 02:00 UTC on Oct 15 is still Oct 14 in New York.
	got := service.Destination(context.Background(), time.Date(2025, time.October, 15, 2, 0, 0, 0, time.UTC))
	if got.InSeason {
		t.Fatalf("expected off-season in New York, got %+v", got)
	}
}

func TestNewSeasonService_UnknownLeague(t *testing.T) {
	t.Parallel()

	rule := season.DefaultRule()
	rule.OffSeason = "cricket"
	if _, err := NewSeasonService(rule, time.UTC); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
