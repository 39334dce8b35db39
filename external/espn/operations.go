package espn

import (
	"context"
	"net/url"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
)

var (
	opTeams           = operation{"teams", fetch.ClassYear, fetch.StrategyThrow}
	opTeamsOrError    = operation{"teams index", fetch.ClassYear, fetch.StrategyErrorObject}
	opTeam            = operation{"team", fetch.ClassHours, fetch.StrategyThrow}
	opTeamRoster      = operation{"team roster", fetch.ClassHours, fetch.StrategyThrow}
	opTeamSchedule    = operation{"team schedule", fetch.ClassMinutes, fetch.StrategyThrow}
	opTeamNews        = operation{"team news", fetch.ClassHours, fetch.StrategyUndefined}
	opTeamInjuries    = operation{"team injuries", fetch.ClassHours, fetch.StrategyUndefined}
	opTeamRecord      = operation{"team record", fetch.ClassHours, fetch.StrategyThrow}
	opTeamLeaders     = operation{"team leaders", fetch.ClassHours, fetch.StrategyThrow}
	opScoreboard      = operation{"scoreboard", fetch.ClassMinutes, fetch.StrategyThrow}
	opGameSummary     = operation{"game summary", fetch.ClassMinutes, fetch.StrategyThrow}
	opGamePlays       = operation{"game plays", fetch.ClassMinutes, fetch.StrategyUndefined}
	opGameOdds        = operation{"game odds", fetch.ClassMinutes, fetch.StrategyUndefined}
	opStandings       = operation{"standings", fetch.ClassHours, fetch.StrategyThrow}
	opRankings        = operation{"rankings", fetch.ClassHours, fetch.StrategyThrow}
	opNews            = operation{"news", fetch.ClassMinutes, fetch.StrategyThrow}
	opAthlete         = operation{"athlete", fetch.ClassHours, fetch.StrategyThrow}
	opAthleteOverview = operation{"athlete overview", fetch.ClassMinutes, fetch.StrategyUndefined}
	opAthleteGameLog  = operation{"athlete game log", fetch.ClassHours, fetch.StrategyUndefined}
	opAthleteStats    = operation{"athlete stats", fetch.ClassHours, fetch.StrategyUndefined}
	opAthleteSplits   = operation{"athlete splits", fetch.ClassHours, fetch.StrategyUndefined}
	opSeasons         = operation{"seasons", fetch.ClassYear, fetch.StrategyThrow}
)

func limit(n string) url.Values {
	return url.Values{"limit": {n}}
}

func (c *Client) Teams(ctx context.Context, l league.League) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeams, c.endpoints.Site, c.sitePath(l, "teams"), limit("500"))
}

// TeamsOrError is the teams index for callers that always want a JSON body:
// a failure yields {"error": "..."} instead of an error.
func (c *Client) TeamsOrError(ctx context.Context, l league.League) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamsOrError, c.endpoints.Site, c.sitePath(l, "teams"), limit("500"))
}

func (c *Client) Team(ctx context.Context, l league.League, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeam, c.endpoints.Site, c.sitePath(l, "teams", teamID), nil)
}

func (c *Client) TeamRoster(ctx context.Context, l league.League, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamRoster, c.endpoints.Site, c.sitePath(l, "teams", teamID, "roster"), nil)
}

// TeamSchedule omits the season parameter when season is empty so the
// upstream picks the current one.
func (c *Client) TeamSchedule(ctx context.Context, l league.League, teamID, season string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	var query url.Values
	if season = strings.TrimSpace(season); season != "" {
		if err := validateSeason(season); err != nil {
			return nil, err
		}
		query = url.Values{"season": {season}}
	}
	return c.get(ctx, opTeamSchedule, c.endpoints.Site, c.sitePath(l, "teams", teamID, "schedule"), query)
}

func (c *Client) TeamNews(ctx context.Context, l league.League, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamNews, c.endpoints.Site, c.sitePath(l, "news"), url.Values{"team": {teamID}})
}

func (c *Client) TeamInjuries(ctx context.Context, l league.League, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamInjuries, c.endpoints.Core, c.corePath(l, "teams", teamID, "injuries"), nil)
}

func (c *Client) TeamRecord(ctx context.Context, l league.League, season, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	season, err := c.seasonOrCurrent(l, season)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamRecord, c.endpoints.Core,
		c.corePath(l, "seasons", season, "types", regularSeason, "teams", teamID, "record"), nil)
}

func (c *Client) TeamLeaders(ctx context.Context, l league.League, season, teamID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "team", teamID); err != nil {
		return nil, err
	}
	season, err := c.seasonOrCurrent(l, season)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opTeamLeaders, c.endpoints.Core,
		c.corePath(l, "seasons", season, "types", regularSeason, "teams", teamID, "leaders"), nil)
}

// Scoreboard lists the games on date (YYYYMMDD).
func (c *Client) Scoreboard(ctx context.Context, l league.League, date string) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	query := url.Values{"dates": {date}, "limit": {"500"}}
	if l.IsCollege() {
		// Without a group filter the college scoreboard only lists ranked games.
		query.Set("groups", "50")
	}
	return c.get(ctx, opScoreboard, c.endpoints.Site, c.sitePath(l, "scoreboard"), query)
}

func (c *Client) GameSummary(ctx context.Context, l league.League, gameID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "game", gameID); err != nil {
		return nil, err
	}
	return c.get(ctx, opGameSummary, c.endpoints.Site, c.sitePath(l, "summary"), url.Values{"event": {gameID}})
}

func (c *Client) GamePlays(ctx context.Context, l league.League, gameID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "game", gameID); err != nil {
		return nil, err
	}
	return c.get(ctx, opGamePlays, c.endpoints.Core,
		c.corePath(l, "events", gameID, "competitions", gameID, "plays"), limit("500"))
}

func (c *Client) GameOdds(ctx context.Context, l league.League, gameID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "game", gameID); err != nil {
		return nil, err
	}
	return c.get(ctx, opGameOdds, c.endpoints.Core,
		c.corePath(l, "events", gameID, "competitions", gameID, "odds"), nil)
}

func (c *Client) Standings(ctx context.Context, l league.League, season string) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	var query url.Values
	if season = strings.TrimSpace(season); season != "" {
		if err := validateSeason(season); err != nil {
			return nil, err
		}
		query = url.Values{"season": {season}}
	}
	return c.get(ctx, opStandings, c.endpoints.Standings, c.sitePath(l, "standings"), query)
}

func (c *Client) Rankings(ctx context.Context, l league.League) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	return c.get(ctx, opRankings, c.endpoints.Site, c.sitePath(l, "rankings"), nil)
}

func (c *Client) News(ctx context.Context, l league.League) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	return c.get(ctx, opNews, c.endpoints.Site, c.sitePath(l, "news"), nil)
}

func (c *Client) Athlete(ctx context.Context, l league.League, playerID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "player", playerID); err != nil {
		return nil, err
	}
	return c.get(ctx, opAthlete, c.endpoints.Core, c.corePath(l, "athletes", playerID), nil)
}

func (c *Client) AthleteOverview(ctx context.Context, l league.League, playerID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "player", playerID); err != nil {
		return nil, err
	}
	return c.get(ctx, opAthleteOverview, c.endpoints.Web, c.sitePath(l, "athletes", playerID, "overview"), nil)
}

func (c *Client) AthleteGameLog(ctx context.Context, l league.League, playerID, season string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "player", playerID); err != nil {
		return nil, err
	}
	var query url.Values
	if season = strings.TrimSpace(season); season != "" {
		if err := validateSeason(season); err != nil {
			return nil, err
		}
		query = url.Values{"season": {season}}
	}
	return c.get(ctx, opAthleteGameLog, c.endpoints.Web, c.sitePath(l, "athletes", playerID, "gamelog"), query)
}

func (c *Client) AthleteStats(ctx context.Context, l league.League, season, playerID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "player", playerID); err != nil {
		return nil, err
	}
	season, err := c.seasonOrCurrent(l, season)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opAthleteStats, c.endpoints.Core,
		c.corePath(l, "seasons", season, "types", regularSeason, "athletes", playerID, "statistics"), nil)
}

func (c *Client) AthleteSplits(ctx context.Context, l league.League, playerID string) (fetch.Payload, error) {
	if err := validateLeagueAndID(l, "player", playerID); err != nil {
		return nil, err
	}
	return c.get(ctx, opAthleteSplits, c.endpoints.Web, c.sitePath(l, "athletes", playerID, "splits"), nil)
}

func (c *Client) Seasons(ctx context.Context, l league.League) (fetch.Payload, error) {
	if err := validateLeague(l); err != nil {
		return nil, err
	}
	return c.get(ctx, opSeasons, c.endpoints.Core, c.corePath(l, "seasons"), limit("50"))
}

func validateLeagueAndID(l league.League, kind, id string) error {
	if err := validateLeague(l); err != nil {
		return err
	}
	return validateID(kind, id)
}
