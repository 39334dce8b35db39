package usecase

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
)

// TeamProvider serves team-scoped upstream documents.
type TeamProvider interface {
	Teams(ctx context.Context, l league.League) (fetch.Payload, error)
	TeamsOrError(ctx context.Context, l league.League) (fetch.Payload, error)
	Team(ctx context.Context, l league.League, teamID string) (fetch.Payload, error)
	TeamRoster(ctx context.Context, l league.League, teamID string) (fetch.Payload, error)
	TeamSchedule(ctx context.Context, l league.League, teamID, season string) (fetch.Payload, error)
	TeamNews(ctx context.Context, l league.League, teamID string) (fetch.Payload, error)
	TeamInjuries(ctx context.Context, l league.League, teamID string) (fetch.Payload, error)
	TeamRecord(ctx context.Context, l league.League, season, teamID string) (fetch.Payload, error)
	TeamLeaders(ctx context.Context, l league.League, season, teamID string) (fetch.Payload, error)
}

// GameProvider serves scoreboard and per-game documents.
type GameProvider interface {
	Scoreboard(ctx context.Context, l league.League, date string) (fetch.Payload, error)
	GameSummary(ctx context.Context, l league.League, gameID string) (fetch.Payload, error)
	GamePlays(ctx context.Context, l league.League, gameID string) (fetch.Payload, error)
	GameOdds(ctx context.Context, l league.League, gameID string) (fetch.Payload, error)
}

// PlayerProvider serves athlete documents.
type PlayerProvider interface {
	Athlete(ctx context.Context, l league.League, playerID string) (fetch.Payload, error)
	AthleteOverview(ctx context.Context, l league.League, playerID string) (fetch.Payload, error)
	AthleteGameLog(ctx context.Context, l league.League, playerID, season string) (fetch.Payload, error)
	AthleteStats(ctx context.Context, l league.League, season, playerID string) (fetch.Payload, error)
	AthleteSplits(ctx context.Context, l league.League, playerID string) (fetch.Payload, error)
}

// LeagueDataProvider serves league-wide documents.
type LeagueDataProvider interface {
	Standings(ctx context.Context, l league.League, season string) (fetch.Payload, error)
	Rankings(ctx context.Context, l league.League) (fetch.Payload, error)
	News(ctx context.Context, l league.League) (fetch.Payload, error)
	Seasons(ctx context.Context, l league.League) (fetch.Payload, error)
}
