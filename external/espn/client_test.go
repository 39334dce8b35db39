package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type recorder struct {
	mu   sync.Mutex
	uris []string
}

func (r *recorder) add(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, uri)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.uris...)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.RequestURI())
		if handler != nil {
			handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	fetcher := fetch.NewFetcher(fetch.Config{
		HTTPClient: server.Client(),
		MaxRetries: 1,
		Cache:      fetch.CachePolicy{},
		Logger:     logging.NewNop(),
	})
	client := NewClient(ClientConfig{
		Fetcher: fetcher,
		Endpoints: config.Endpoints{
			Site:      server.URL + "/site",
			Standings: server.URL + "/standings",
			Core:      server.URL + "/core",
			Web:       server.URL + "/web",
		},
		Logger: logging.NewNop(),
		Now: func() time.Time {
			return time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
		},
	})
	return client, rec
}

func mustLeague(t *testing.T, id string) league.League {
	t.Helper()
	l, ok := league.Lookup(id)
	if !ok {
		t.Fatalf("unknown league %s", id)
	}
	return l
}

func TestClient_OperationsBuildExpectedLocators(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, nil)
	ncaam := mustLeague(t, league.MensCollege)
	nba := mustLeague(t, league.NBA)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() (fetch.Payload, error)
		want string
	}{
		{"teams", func() (fetch.Payload, error) { return client.Teams(ctx, ncaam) }, "/site/basketball/mens-college-basketball/teams?limit=500"},
		{"team", func() (fetch.Payload, error) { return client.Team(ctx, ncaam, "2294") }, "/site/basketball/mens-college-basketball/teams/2294"},
		{"roster", func() (fetch.Payload, error) { return client.TeamRoster(ctx, nba, "13") }, "/site/basketball/nba/teams/13/roster"},
		{"schedule", func() (fetch.Payload, error) { return client.TeamSchedule(ctx, nba, "13", "2025") }, "/site/basketball/nba/teams/13/schedule?season=2025"},
		{"schedule current", func() (fetch.Payload, error) { return client.TeamSchedule(ctx, nba, "13", "") }, "/site/basketball/nba/teams/13/schedule"},
		{"team news", func() (fetch.Payload, error) { return client.TeamNews(ctx, nba, "13") }, "/site/basketball/nba/news?team=13"},
		{"injuries", func() (fetch.Payload, error) { return client.TeamInjuries(ctx, nba, "13") }, "/core/basketball/leagues/nba/teams/13/injuries"},
		{"record", func() (fetch.Payload, error) { return client.TeamRecord(ctx, nba, "", "13") }, "/core/basketball/leagues/nba/seasons/2026/types/2/teams/13/record"},
		{"leaders", func() (fetch.Payload, error) { return client.TeamLeaders(ctx, nba, "2024", "13") }, "/core/basketball/leagues/nba/seasons/2024/types/2/teams/13/leaders"},
		{"scoreboard", func() (fetch.Payload, error) { return client.Scoreboard(ctx, nba, "20251120") }, "/site/basketball/nba/scoreboard?dates=20251120&limit=500"},
		{"college scoreboard", func() (fetch.Payload, error) { return client.Scoreboard(ctx, ncaam, "20251120") }, "/site/basketball/mens-college-basketball/scoreboard?dates=20251120&groups=50&limit=500"},
		{"summary", func() (fetch.Payload, error) { return client.GameSummary(ctx, nba, "401584793") }, "/site/basketball/nba/summary?event=401584793"},
		{"plays", func() (fetch.Payload, error) { return client.GamePlays(ctx, nba, "401584793") }, "/core/basketball/leagues/nba/events/401584793/competitions/401584793/plays?limit=500"},
		{"odds", func() (fetch.Payload, error) { return client.GameOdds(ctx, nba, "401584793") }, "/core/basketball/leagues/nba/events/401584793/competitions/401584793/odds"},
		{"standings", func() (fetch.Payload, error) { return client.Standings(ctx, nba, "") }, "/standings/basketball/nba/standings"},
		{"rankings", func() (fetch.Payload, error) { return client.Rankings(ctx, ncaam) }, "/site/basketball/mens-college-basketball/rankings"},
		{"news", func() (fetch.Payload, error) { return client.News(ctx, ncaam) }, "/site/basketball/mens-college-basketball/news"},
		{"athlete", func() (fetch.Payload, error) { return client.Athlete(ctx, nba, "3112335") }, "/core/basketball/leagues/nba/athletes/3112335"},
		{"overview", func() (fetch.Payload, error) { return client.AthleteOverview(ctx, nba, "3112335") }, "/web/basketball/nba/athletes/3112335/overview"},
		{"gamelog", func() (fetch.Payload, error) { return client.AthleteGameLog(ctx, nba, "3112335", "2025") }, "/web/basketball/nba/athletes/3112335/gamelog?season=2025"},
		{"stats", func() (fetch.Payload, error) { return client.AthleteStats(ctx, nba, "2025", "3112335") }, "/core/basketball/leagues/nba/seasons/2025/types/2/athletes/3112335/statistics"},
		{"splits", func() (fetch.Payload, error) { return client.AthleteSplits(ctx, nba, "3112335") }, "/web/basketball/nba/athletes/3112335/splits"},
		{"seasons", func() (fetch.Payload, error) { return client.Seasons(ctx, nba) }, "/core/basketball/leagues/nba/seasons?limit=50"},
	}

	for i, tc := range cases {
		payload, err := tc.call()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if string(payload) != `{"ok":true}` {
			t.Fatalf("%s: unexpected payload %s", tc.name, payload)
		}
		uris := rec.all()
		if len(uris) != i+1 {
			t.Fatalf("%s: expected one request, have %d total", tc.name, len(uris))
		}
		if got := uris[i]; got != tc.want {
			t.Fatalf("%s: unexpected locator\n got=%s\nwant=%s", tc.name, got, tc.want)
		}
	}
}

func TestClient_InvalidInputPerformsNoIO(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, nil)
	nba := mustLeague(t, league.NBA)
	ctx := context.Background()

	calls := map[string]func() (fetch.Payload, error){
		"empty team id":    func() (fetch.Payload, error) { return client.Team(ctx, nba, "") },
		"non numeric id":   func() (fetch.Payload, error) { return client.Team(ctx, nba, "../admin") },
		"bad date":         func() (fetch.Payload, error) { return client.Scoreboard(ctx, nba, "2025-11-20") },
		"impossible date":  func() (fetch.Payload, error) { return client.Scoreboard(ctx, nba, "20250231") },
		"bad season":       func() (fetch.Payload, error) { return client.Standings(ctx, nba, "25") },
		"unknown league":   func() (fetch.Payload, error) { return client.Teams(ctx, league.League{ID: "nfl"}) },
		"bad athlete id":   func() (fetch.Payload, error) { return client.Athlete(ctx, nba, "lebron") },
		"bad stats season": func() (fetch.Payload, error) { return client.AthleteStats(ctx, nba, "x", "1") },
	}
	for name, call := range calls {
		if _, err := call(); !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if got := len(rec.all()); got != 0 {
		t.Fatalf("expected no upstream requests, got %d", got)
	}
}

func TestClient_OptionalSectionFailureYieldsNil(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	nba := mustLeague(t, league.NBA)

	payload, err := client.GameOdds(context.Background(), nba, "401584793")
	if err != nil || payload != nil {
		t.Fatalf("expected nil payload and error, got %s %v", payload, err)
	}
	if got := len(rec.all()); got != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", got)
	}
}

func TestClient_PrimaryFailureIsReturned(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	nba := mustLeague(t, league.NBA)

	_, err := client.Team(context.Background(), nba, "999999")
	if !errors.Is(err, fetch.ErrNotFound) {
		t.Fatalf("expected fetch.ErrNotFound through wrapping, got %v", err)
	}
}

func TestClient_TeamsOrErrorReturnsErrorObject(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	ncaaw := mustLeague(t, league.WomensCollege)

	payload, err := client.TeamsOrError(context.Background(), ncaaw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg, ok := payload.ErrorMessage(); !ok || msg == "" {
		t.Fatalf("expected error object, got %s", payload)
	}
}

func TestValidateDate(t *testing.T) {
	t.Parallel()

	if err := ValidateDate("20240229"); err != nil {
		t.Fatalf("expected leap day to be valid: %v", err)
	}
	for _, raw := range []string{"", "2024022", "20241301", "abcdefgh"} {
		if err := ValidateDate(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}
