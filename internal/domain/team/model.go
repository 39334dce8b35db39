package team

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Team is a basketball team as listed by the upstream teams index.
type Team struct {
	ID           string `json:"id"`
	UID          string `json:"uid,omitempty"`
	DisplayName  string `json:"displayName"`
	ShortName    string `json:"shortName,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Location     string `json:"location,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
	Color        string `json:"color,omitempty"`
	Logo         string `json:"logo,omitempty"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.DisplayName == "" {
		return fmt.Errorf("team display name is required")
	}

	return nil
}

// SortByDisplayName orders teams ascending by display name using the
// collation rules of tag. Teams with equal names keep their input order.
func SortByDisplayName(teams []Team, tag language.Tag) {
	// Collators are not safe for concurrent use.
	c := collate.New(tag, collate.Loose)
	sort.SliceStable(teams, func(i, j int) bool {
		return c.CompareString(teams[i].DisplayName, teams[j].DisplayName) < 0
	})
}
