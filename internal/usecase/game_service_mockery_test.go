package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/league"
	usecasemock "github.com/riskibarqy/courtside/internal/mocks/usecase"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/stretchr/testify/mock"
)

const scoreboardFixture = `{"events":[{
	"id":"401705000","name":"Duke Blue Devils at Iowa Hawkeyes","shortName":"DUKE @ IOWA","date":"2025-11-21T00:30Z",
	"status":{"type":{"state":"post","completed":true,"shortDetail":"Final"}},
	"competitions":[{"competitors":[
		{"homeAway":"home","score":"70","winner":false,"curatedRank":{"current":99},"team":{"id":"2294","displayName":"Iowa Hawkeyes","abbreviation":"IOWA"}},
		{"homeAway":"away","score":"81","winner":true,"curatedRank":{"current":4},"team":{"id":"150","displayName":"Duke Blue Devils","abbreviation":"DUKE"}}
	]}]
}]}`

func TestGameService_Scoreboard_DefaultsToTodayInLocationUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameProvider(t)
	ncaam := mustLookup(t, league.MensCollege)
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 02:00 UTC on the 21st is still the 20th in New York.
	now := func() time.Time { return time.Date(2025, time.November, 21, 2, 0, 0, 0, time.UTC) }

	provider.On("Scoreboard", mock.Anything, ncaam, "20251120").Return(fetch.Payload(scoreboardFixture), nil).Once()

	service := NewGameService(provider, eastern, now)
	view, err := service.Scoreboard(context.Background(), "ncaam", "")
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if view.Date != "20251120" {
		t.Fatalf("unexpected date %s", view.Date)
	}
	if len(view.Games) != 1 {
		t.Fatalf("expected one game, got %d", len(view.Games))
	}

	g := view.Games[0]
	if g.State != game.StateFinal || !g.Completed || g.Status != "Final" {
		t.Fatalf("unexpected status mapping: %+v", g)
	}
	if g.Home.TeamID != "2294" || g.Away.TeamID != "150" {
		t.Fatalf("unexpected competitors: %+v / %+v", g.Home, g.Away)
	}
	if g.Home.Rank != 0 || g.Away.Rank != 4 || !g.Away.Winner {
		t.Fatalf("unexpected rank mapping: %+v / %+v", g.Home, g.Away)
	}
	if !g.Date.Equal(time.Date(2025, time.November, 21, 0, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", g.Date)
	}
}

func TestGameService_Scoreboard_InvalidDateUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameProvider(t)
	nba := mustLookup(t, league.NBA)
	provider.On("Scoreboard", mock.Anything, nba, "tomorrow").
		Return(nil, errors.Join(ErrInvalidInput, errors.New("date must be YYYYMMDD"))).
		Once()

	service := NewGameService(provider, time.UTC, nil)
	_, err := service.Scoreboard(context.Background(), "nba", "tomorrow")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGameService_GetGamePage_UsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameProvider(t)
	nba := mustLookup(t, league.NBA)

	provider.On("GameSummary", mock.Anything, nba, "401584793").Return(fetch.Payload(`{"header":{}}`), nil).Once()
	provider.On("GamePlays", mock.Anything, nba, "401584793").Return(fetch.Payload(`{"items":[]}`), nil).Once()
	provider.On("GameOdds", mock.Anything, nba, "401584793").Return(nil, nil).Once()

	service := NewGameService(provider, time.UTC, nil)
	page, err := service.GetGamePage(context.Background(), "nba", "401584793")
	if err != nil {
		t.Fatalf("game page: %v", err)
	}
	if page.Summary == nil || page.Plays == nil || page.Odds != nil {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestPlayerService_GetPlayerPage_UsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewPlayerProvider(t)
	wnba := mustLookup(t, league.WNBA)

	provider.On("Athlete", mock.Anything, wnba, "4433403").Return(fetch.Payload(`{"id":"4433403"}`), nil).Once()
	provider.On("AthleteOverview", mock.Anything, wnba, "4433403").Return(fetch.Payload(`{}`), nil).Once()
	provider.On("AthleteGameLog", mock.Anything, wnba, "4433403", "2025").Return(nil, nil).Once()
	provider.On("AthleteStats", mock.Anything, wnba, "2025", "4433403").Return(fetch.Payload(`{}`), nil).Once()
	provider.On("AthleteSplits", mock.Anything, wnba, "4433403").Return(nil, nil).Once()

	service := NewPlayerService(provider)
	page, err := service.GetPlayerPage(context.Background(), "wnba", "4433403", "2025")
	if err != nil {
		t.Fatalf("player page: %v", err)
	}
	if page.Athlete.Get("id").String() != "4433403" {
		t.Fatalf("unexpected athlete payload %s", page.Athlete)
	}
	if page.GameLog != nil || page.Splits != nil {
		t.Fatalf("expected missing optional sections")
	}
}

func TestPlayerService_GetPlayerPage_AthleteRequiredUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewPlayerProvider(t)
	nba := mustLookup(t, league.NBA)
	upstream := &fetch.Error{Kind: fetch.KindTransientNetwork, Attempts: 2}

	provider.On("Athlete", mock.Anything, nba, "1").Return(nil, upstream).Once()
	provider.On("AthleteOverview", mock.Anything, nba, "1").Return(nil, nil).Maybe()
	provider.On("AthleteGameLog", mock.Anything, nba, "1", "").Return(nil, nil).Maybe()
	provider.On("AthleteStats", mock.Anything, nba, "", "1").Return(nil, nil).Maybe()
	provider.On("AthleteSplits", mock.Anything, nba, "1").Return(nil, nil).Maybe()

	service := NewPlayerService(provider)
	_, err := service.GetPlayerPage(context.Background(), "nba", "1", "")
	if !errors.Is(err, fetch.ErrTransientNetwork) {
		t.Fatalf("expected transient network error, got %v", err)
	}
}
