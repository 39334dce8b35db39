package league

import (
	"fmt"
	"strings"
	"time"
)

// League is a basketball league segment served by the upstream sports API.
type League struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Abbrev      string `json:"abbrev"`
	HasRankings bool   `json:"hasRankings"`
}

const (
	MensCollege   = "mens-college-basketball"
	WomensCollege = "womens-college-basketball"
	NBA           = "nba"
	WNBA          = "wnba"
)

var catalog = []League{
	{ID: MensCollege, Slug: "ncaam", Name: "NCAA Men's Basketball", Abbrev: "NCAAM", HasRankings: true},
	{ID: WomensCollege, Slug: "ncaaw", Name: "NCAA Women's Basketball", Abbrev: "NCAAW", HasRankings: true},
	{ID: NBA, Slug: "nba", Name: "National Basketball Association", Abbrev: "NBA"},
	{ID: WNBA, Slug: "wnba", Name: "Women's National Basketball Association", Abbrev: "WNBA"},
}

// All returns the supported leagues in display order.
func All() []League {
	out := make([]League, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves either the upstream segment ("mens-college-basketball") or
// the short slug ("ncaam").
func Lookup(slugOrID string) (League, bool) {
	key := strings.ToLower(strings.TrimSpace(slugOrID))
	if key == "" {
		return League{}, false
	}
	for _, l := range catalog {
		if l.ID == key || l.Slug == key {
			return l, true
		}
	}
	return League{}, false
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Slug == "" {
		return fmt.Errorf("league slug is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

// IsCollege reports whether the league uses college seasons and polls.
func (l League) IsCollege() bool {
	return l.ID == MensCollege || l.ID == WomensCollege
}

// SeasonYear returns the upstream season label in effect at t. Winter leagues
// are labelled by the year their season ends; the WNBA uses the calendar year.
func (l League) SeasonYear(t time.Time) int {
	if l.ID == WNBA {
		return t.Year()
	}
	if t.Month() >= time.August {
		return t.Year() + 1
	}
	return t.Year()
}
