package usecase

import (
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/tidwall/gjson"
)

// unrankedPosition is what the upstream reports for teams outside the poll.
const unrankedPosition = 99

func mapTeams(payload fetch.Payload) []team.Team {
	items := payload.Get("sports.0.leagues.0.teams.#.team").Array()
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		t := team.Team{
			ID:           item.Get("id").String(),
			UID:          item.Get("uid").String(),
			DisplayName:  item.Get("displayName").String(),
			ShortName:    item.Get("shortDisplayName").String(),
			Abbreviation: item.Get("abbreviation").String(),
			Location:     item.Get("location").String(),
			Nickname:     item.Get("name").String(),
			Color:        item.Get("color").String(),
			Logo:         item.Get("logos.0.href").String(),
		}
		if t.Validate() != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

func mapGames(payload fetch.Payload) []game.Game {
	events := payload.Get("events").Array()
	out := make([]game.Game, 0, len(events))
	for _, event := range events {
		g := game.Game{
			ID:        event.Get("id").String(),
			Name:      event.Get("name").String(),
			ShortName: event.Get("shortName").String(),
			Date:      parseEventDate(event.Get("date").String()),
			Status:    event.Get("status.type.shortDetail").String(),
			State:     game.ParseState(event.Get("status.type.state").String()),
			Completed: event.Get("status.type.completed").Bool(),
		}
		for _, competitor := range event.Get("competitions.0.competitors").Array() {
			side := mapCompetitor(competitor)
			if competitor.Get("homeAway").String() == "home" {
				g.Home = side
			} else {
				g.Away = side
			}
		}
		if g.Validate() != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

func mapCompetitor(item gjson.Result) game.Competitor {
	c := game.Competitor{
		TeamID:       item.Get("team.id").String(),
		DisplayName:  item.Get("team.displayName").String(),
		Abbreviation: item.Get("team.abbreviation").String(),
		Logo:         item.Get("team.logo").String(),
		Score:        item.Get("score").String(),
		Winner:       item.Get("winner").Bool(),
	}
	if rank := int(item.Get("curatedRank.current").Int()); rank > 0 && rank != unrankedPosition {
		c.Rank = rank
	}
	return c
}

// parseEventDate accepts the minute-precision form the scoreboard uses
// ("2025-11-20T00:30Z") as well as full RFC 3339.
func parseEventDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func mapStandings(payload fetch.Payload) []standing.Entry {
	out := make([]standing.Entry, 0, 32)
	groups := payload.Get("children").Array()
	if len(groups) == 0 {
		out = appendStandingEntries(out, payload.Get("name").String(), payload.Get("standings.entries"))
	}
	for _, group := range groups {
		out = appendStandingEntries(out, group.Get("name").String(), group.Get("standings.entries"))
	}
	standing.Sort(out)
	return out
}

func appendStandingEntries(out []standing.Entry, groupName string, entries gjson.Result) []standing.Entry {
	for _, entry := range entries.Array() {
		row := standing.Entry{
			TeamID:   entry.Get("team.id").String(),
			TeamName: entry.Get("team.displayName").String(),
			Group:    strings.TrimSpace(groupName),
		}
		if row.TeamID == "" {
			continue
		}
		for _, stat := range entry.Get("stats").Array() {
			switch stat.Get("name").String() {
			case "wins":
				row.Wins = int(stat.Get("value").Int())
			case "losses":
				row.Losses = int(stat.Get("value").Int())
			case "winPercent":
				row.WinPercent = stat.Get("value").Float()
			case "gamesBehind":
				row.GamesBehind = stat.Get("value").Float()
			case "streak":
				row.Streak = stat.Get("displayValue").String()
			}
		}
		out = append(out, row)
	}
	return out
}
