package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"go.opentelemetry.io/otel/attribute"
)

// PlayerPage bundles a player page. Athlete is required; the other sections
// are nil when unavailable.
type PlayerPage struct {
	League   league.League `json:"league"`
	Athlete  fetch.Payload `json:"athlete"`
	Overview fetch.Payload `json:"overview"`
	GameLog  fetch.Payload `json:"gameLog"`
	Stats    fetch.Payload `json:"stats"`
	Splits   fetch.Payload `json:"splits"`
}

type PlayerService struct {
	players PlayerProvider
}

func NewPlayerService(players PlayerProvider) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) GetPlayerPage(ctx context.Context, leagueSlug, playerID, season string) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerPage")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return PlayerPage{}, err
	}
	playerID = strings.TrimSpace(playerID)
	season = strings.TrimSpace(season)
	span.SetAttributes(attribute.String("league", l.ID), attribute.String("player_id", playerID))

	page := PlayerPage{League: l}
	p := newSectionPool(ctx)
	p.Go(func(ctx context.Context) (err error) {
		page.Athlete, err = s.players.Athlete(ctx, l, playerID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Overview, err = s.players.AthleteOverview(ctx, l, playerID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.GameLog, err = s.players.AthleteGameLog(ctx, l, playerID, season)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Stats, err = s.players.AthleteStats(ctx, l, season, playerID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Splits, err = s.players.AthleteSplits(ctx, l, playerID)
		return err
	})
	if err := p.Wait(); err != nil {
		return PlayerPage{}, fmt.Errorf("player page league=%s player=%s: %w", l.ID, playerID, err)
	}

	return page, nil
}
