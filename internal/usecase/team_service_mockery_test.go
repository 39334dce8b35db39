package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/league"
	usecasemock "github.com/riskibarqy/courtside/internal/mocks/usecase"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"
)

const teamsIndexFixture = `{"sports":[{"leagues":[{"teams":[
	{"team":{"id":"2294","displayName":"Iowa Hawkeyes","shortDisplayName":"Iowa","abbreviation":"IOWA","logos":[{"href":"https://a.espncdn.com/i/teamlogos/ncaa/500/2294.png"}]}},
	{"team":{"id":"150","displayName":"Duke Blue Devils","shortDisplayName":"Duke","abbreviation":"DUKE"}},
	{"team":{"id":"","displayName":"Broken"}}
]}]}]}`

func mustLookup(t *testing.T, id string) league.League {
	t.Helper()
	l, ok := league.Lookup(id)
	if !ok {
		t.Fatalf("unknown league %s", id)
	}
	return l
}

func TestTeamService_ListTeams_SortsByDisplayNameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewTeamProvider(t)
	ncaam := mustLookup(t, league.MensCollege)

	provider.
		On("Teams", mock.Anything, ncaam).
		Return(fetch.Payload(teamsIndexFixture), nil).
		Once()

	service := NewTeamService(provider, language.English, logging.NewNop())
	got, err := service.ListTeams(ctx, "ncaam")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected invalid rows to be dropped, got %d teams", len(got))
	}
	if got[0].ID != "150" || got[1].ID != "2294" {
		t.Fatalf("unexpected order: %s, %s", got[0].DisplayName, got[1].DisplayName)
	}
	if got[1].Logo == "" || got[1].ShortName != "Iowa" {
		t.Fatalf("unexpected mapping: %+v", got[1])
	}
}

func TestTeamService_ListTeams_UnknownLeagueUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewTeamProvider(t)
	service := NewTeamService(provider, language.English, logging.NewNop())

	_, err := service.ListTeams(context.Background(), "nfl")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListTeams_PropagatesUpstreamErrorUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewTeamProvider(t)
	nba := mustLookup(t, league.NBA)
	upstream := &fetch.Error{Kind: fetch.KindUpstreamServer, StatusCode: 503, Attempts: 2}

	provider.On("Teams", mock.Anything, nba).Return(nil, upstream).Once()

	service := NewTeamService(provider, language.English, logging.NewNop())
	_, err := service.ListTeams(context.Background(), "nba")
	if !errors.Is(err, fetch.ErrUpstreamServer) {
		t.Fatalf("expected upstream server error, got %v", err)
	}
}

func TestTeamService_GetTeamPage_OptionalSectionsMayBeMissingUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewTeamProvider(t)
	nba := mustLookup(t, league.NBA)

	provider.On("Team", mock.Anything, nba, "13").Return(fetch.Payload(`{"team":{"id":"13"}}`), nil).Once()
	provider.On("TeamRoster", mock.Anything, nba, "13").Return(fetch.Payload(`{"athletes":[]}`), nil).Once()
	provider.On("TeamSchedule", mock.Anything, nba, "13", "").Return(fetch.Payload(`{"events":[]}`), nil).Once()
	provider.On("TeamNews", mock.Anything, nba, "13").Return(nil, nil).Once()
	provider.On("TeamInjuries", mock.Anything, nba, "13").Return(fetch.Payload(`{"items":[]}`), nil).Once()

	service := NewTeamService(provider, language.English, logging.NewNop())
	page, err := service.GetTeamPage(context.Background(), "nba", " 13 ")
	if err != nil {
		t.Fatalf("get team page: %v", err)
	}
	if page.Team == nil || page.Roster == nil || page.Schedule == nil {
		t.Fatalf("expected required sections, got %+v", page)
	}
	if page.News != nil {
		t.Fatalf("expected missing news section")
	}
	if page.League.ID != league.NBA {
		t.Fatalf("unexpected league %s", page.League.ID)
	}
}

func TestTeamService_GetTeamPage_RequiredSectionFailsUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewTeamProvider(t)
	nba := mustLookup(t, league.NBA)
	notFound := &fetch.Error{Kind: fetch.KindUpstreamClient, StatusCode: 404}

	provider.On("Team", mock.Anything, nba, "999").Return(nil, notFound).Once()
	provider.On("TeamRoster", mock.Anything, nba, "999").Return(fetch.Payload(`{}`), nil).Maybe()
	provider.On("TeamSchedule", mock.Anything, nba, "999", "").Return(fetch.Payload(`{}`), nil).Maybe()
	provider.On("TeamNews", mock.Anything, nba, "999").Return(nil, nil).Maybe()
	provider.On("TeamInjuries", mock.Anything, nba, "999").Return(nil, nil).Maybe()

	service := NewTeamService(provider, language.English, logging.NewNop())
	_, err := service.GetTeamPage(context.Background(), "nba", "999")
	if !errors.Is(err, fetch.ErrNotFound) {
		t.Fatalf("expected upstream not found, got %v", err)
	}
}

func TestTeamService_RawTeamsUsesErrorObjectProviderUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewTeamProvider(t)
	wnba := mustLookup(t, league.WNBA)

	provider.On("TeamsOrError", mock.Anything, wnba).Return(fetch.ErrorObject("upstream server error"), nil).Once()

	service := NewTeamService(provider, language.English, logging.NewNop())
	payload, err := service.RawTeams(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("raw teams: %v", err)
	}
	if msg, ok := payload.ErrorMessage(); !ok || msg != "upstream server error" {
		t.Fatalf("unexpected payload %s", payload)
	}
}
