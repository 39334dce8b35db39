package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/league"
	usecasemock "github.com/riskibarqy/courtside/internal/mocks/usecase"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/stretchr/testify/mock"
)

func TestWarmupService_Run_CountsFailuresUsingMockery(t *testing.T) {
	t.Parallel()

	teams := usecasemock.NewTeamProvider(t)
	data := usecasemock.NewLeagueDataProvider(t)
	nba := mustLookup(t, league.NBA)
	wnba := mustLookup(t, league.WNBA)

	teams.On("Teams", mock.Anything, nba).Return(fetch.Payload(`{}`), nil).Once()
	teams.On("Teams", mock.Anything, wnba).Return(fetch.Payload(`{}`), nil).Once()
	data.On("Standings", mock.Anything, nba, "").Return(fetch.Payload(`{}`), nil).Once()
	data.On("Standings", mock.Anything, wnba, "").Return(nil, &fetch.Error{Kind: fetch.KindUpstreamServer, StatusCode: 503}).Once()
	data.On("Seasons", mock.Anything, nba).Return(fetch.Payload(`{}`), nil).Once()
	data.On("Seasons", mock.Anything, wnba).Return(fetch.Payload(`{}`), nil).Once()

	service := NewWarmupService(teams, data, []league.League{wnba, nba}, 2, nil)
	result, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run warmup: %v", err)
	}
	if result.Success != 5 || result.Failed != 1 {
		t.Fatalf("unexpected counts: success=%d failed=%d", result.Success, result.Failed)
	}
	if len(result.Tasks) != 6 {
		t.Fatalf("expected 6 task rows, got %d", len(result.Tasks))
	}
	if result.Tasks[0].LeagueID != "nba" || result.Tasks[0].Resource != "seasons" {
		t.Fatalf("unexpected first row: %+v", result.Tasks[0])
	}

	var failed *WarmupTaskResult
	for i := range result.Tasks {
		if result.Tasks[i].Status == warmupStatusFailed {
			failed = &result.Tasks[i]
		}
	}
	if failed == nil || failed.LeagueID != "wnba" || failed.Resource != "standings" || failed.Message == "" {
		t.Fatalf("unexpected failed row: %+v", failed)
	}
}

func TestWarmupService_Run_NoLeagues(t *testing.T) {
	t.Parallel()

	service := NewWarmupService(nil, nil, nil, 4, nil)
	result, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run warmup: %v", err)
	}
	if result.Success != 0 || result.Failed != 0 || len(result.Tasks) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestWarmupService_Start_StopsOnCancelUsingMockery(t *testing.T) {
	t.Parallel()

	teams := usecasemock.NewTeamProvider(t)
	data := usecasemock.NewLeagueDataProvider(t)
	nba := mustLookup(t, league.NBA)

	teams.On("Teams", mock.Anything, nba).Return(fetch.Payload(`{}`), nil)
	data.On("Standings", mock.Anything, nba, "").Return(fetch.Payload(`{}`), nil)
	ran := make(chan struct{})
	var once sync.Once
	data.On("Seasons", mock.Anything, nba).
		Run(func(mock.Arguments) { once.Do(func() { close(ran) }) }).
		Return(fetch.Payload(`{}`), nil)

	service := NewWarmupService(teams, data, []league.League{nba}, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Start(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatalf("warmup did not run immediately")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Start did not return after cancel")
	}
}
