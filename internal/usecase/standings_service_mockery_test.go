package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/league"
	usecasemock "github.com/riskibarqy/courtside/internal/mocks/usecase"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/stretchr/testify/mock"
)

const standingsFixture = `{"children":[
	{"name":"Western Conference","standings":{"entries":[
		{"team":{"id":"13","displayName":"Los Angeles Lakers"},"stats":[{"name":"wins","value":10},{"name":"losses","value":5},{"name":"winPercent","value":0.667},{"name":"streak","displayValue":"W2"}]},
		{"team":{"id":"25","displayName":"Oklahoma City Thunder"},"stats":[{"name":"wins","value":14},{"name":"losses","value":1},{"name":"winPercent","value":0.933}]}
	]}},
	{"name":"Eastern Conference","standings":{"entries":[
		{"team":{"id":"2","displayName":"Boston Celtics"},"stats":[{"name":"wins","value":9},{"name":"losses","value":6},{"name":"winPercent","value":0.6},{"name":"gamesBehind","value":1.5}]}
	]}}
]}`

func TestStandingsService_Standings_UsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLeagueDataProvider(t)
	nba := mustLookup(t, league.NBA)
	provider.On("Standings", mock.Anything, nba, "").Return(fetch.Payload(standingsFixture), nil).Once()

	service := NewStandingsService(provider)
	view, err := service.Standings(context.Background(), "nba", " ")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(view.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(view.Entries))
	}
	if view.Entries[0].TeamID != "2" || view.Entries[1].TeamID != "25" || view.Entries[2].TeamID != "13" {
		t.Fatalf("unexpected order: %+v", view.Entries)
	}
	if view.Entries[2].Streak != "W2" || view.Entries[0].GamesBehind != 1.5 {
		t.Fatalf("unexpected stat mapping: %+v", view.Entries)
	}
	if len(view.Groups) != 2 || view.Groups[0] != "Eastern Conference" {
		t.Fatalf("unexpected groups %v", view.Groups)
	}
	if view.Raw == nil {
		t.Fatalf("expected raw payload")
	}
}

func TestStandingsService_Rankings_RequiresPollUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLeagueDataProvider(t)
	service := NewStandingsService(provider)

	if _, err := service.Rankings(context.Background(), "nba"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nba rankings, got %v", err)
	}

	ncaaw := mustLookup(t, league.WomensCollege)
	provider.On("Rankings", mock.Anything, ncaaw).Return(fetch.Payload(`{"rankings":[]}`), nil).Once()
	if _, err := service.Rankings(context.Background(), "ncaaw"); err != nil {
		t.Fatalf("rankings: %v", err)
	}
}

func TestStandingsService_NewsAndSeasons_UsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLeagueDataProvider(t)
	wnba := mustLookup(t, league.WNBA)
	provider.On("News", mock.Anything, wnba).Return(fetch.Payload(`{"articles":[]}`), nil).Once()
	provider.On("Seasons", mock.Anything, wnba).Return(nil, &fetch.Error{Kind: fetch.KindMalformedResponse}).Once()

	service := NewStandingsService(provider)
	if _, err := service.News(context.Background(), "wnba"); err != nil {
		t.Fatalf("news: %v", err)
	}
	if _, err := service.Seasons(context.Background(), "wnba"); !errors.Is(err, fetch.ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}
