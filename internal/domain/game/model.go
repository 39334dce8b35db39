package game

import (
	"fmt"
	"time"
)

// State is the coarse lifecycle of a game as reported by the scoreboard.
type State string

const (
	StateScheduled  State = "pre"
	StateInProgress State = "in"
	StateFinal      State = "post"
	StateUnknown    State = ""
)

func ParseState(raw string) State {
	switch State(raw) {
	case StateScheduled, StateInProgress, StateFinal:
		return State(raw)
	default:
		return StateUnknown
	}
}

// Competitor is one side of a game.
type Competitor struct {
	TeamID       string `json:"teamId"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Logo         string `json:"logo,omitempty"`
	Score        string `json:"score,omitempty"`
	Rank         int    `json:"rank,omitempty"`
	Winner       bool   `json:"winner"`
}

// Game is a single scheduled, live or completed contest.
type Game struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ShortName string     `json:"shortName,omitempty"`
	Date      time.Time  `json:"date"`
	Status    string     `json:"status"`
	State     State      `json:"state"`
	Completed bool       `json:"completed"`
	Home      Competitor `json:"home"`
	Away      Competitor `json:"away"`
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.Home.TeamID == "" || g.Away.TeamID == "" {
		return fmt.Errorf("game %s requires both competitors", g.ID)
	}

	return nil
}

// IsLive reports whether the game is currently being played.
func (g Game) IsLive() bool {
	return g.State == StateInProgress
}
