package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"go.opentelemetry.io/otel/attribute"
)

type ScoreboardView struct {
	League league.League `json:"league"`
	Date   string        `json:"date"`
	Games  []game.Game   `json:"games"`
	Raw    fetch.Payload `json:"raw"`
}

// GamePage bundles a game page. Summary is required; Plays and Odds are nil
// when unavailable.
type GamePage struct {
	League  league.League `json:"league"`
	Summary fetch.Payload `json:"summary"`
	Plays   fetch.Payload `json:"plays"`
	Odds    fetch.Payload `json:"odds"`
}

type GameService struct {
	games    GameProvider
	location *time.Location
	now      func() time.Time
}

func NewGameService(games GameProvider, location *time.Location, now func() time.Time) *GameService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &GameService{
		games:    games,
		location: location,
		now:      now,
	}
}

// Scoreboard lists games on date (YYYYMMDD). An empty date means today in
// the service location.
func (s *GameService) Scoreboard(ctx context.Context, leagueSlug, date string) (ScoreboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Scoreboard")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return ScoreboardView{}, err
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().In(s.location).Format("20060102")
	}
	span.SetAttributes(attribute.String("league", l.ID), attribute.String("date", date))

	payload, err := s.games.Scoreboard(ctx, l, date)
	if err != nil {
		return ScoreboardView{}, fmt.Errorf("scoreboard league=%s date=%s: %w", l.ID, date, err)
	}

	return ScoreboardView{
		League: l,
		Date:   date,
		Games:  mapGames(payload),
		Raw:    payload,
	}, nil
}

func (s *GameService) GetGamePage(ctx context.Context, leagueSlug, gameID string) (GamePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGamePage")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return GamePage{}, err
	}
	gameID = strings.TrimSpace(gameID)
	span.SetAttributes(attribute.String("league", l.ID), attribute.String("game_id", gameID))

	page := GamePage{League: l}
	p := newSectionPool(ctx)
	p.Go(func(ctx context.Context) (err error) {
		page.Summary, err = s.games.GameSummary(ctx, l, gameID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Plays, err = s.games.GamePlays(ctx, l, gameID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Odds, err = s.games.GameOdds(ctx, l, gameID)
		return err
	})
	if err := p.Wait(); err != nil {
		return GamePage{}, fmt.Errorf("game page league=%s game=%s: %w", l.ID, gameID, err)
	}

	return page, nil
}
