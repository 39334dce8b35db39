package standing

import (
	"sort"
	"strings"
)

// Entry is one team's row in a conference or division table.
type Entry struct {
	TeamID      string  `json:"teamId"`
	TeamName    string  `json:"teamName"`
	Group       string  `json:"group"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinPercent  float64 `json:"winPercent"`
	GamesBehind float64 `json:"gamesBehind"`
	Streak      string  `json:"streak,omitempty"`
}

// Sort orders entries by group, then win percent descending, then team name.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.WinPercent != b.WinPercent {
			return a.WinPercent > b.WinPercent
		}
		return strings.ToLower(a.TeamName) < strings.ToLower(b.TeamName)
	})
}

// Groups returns the distinct group names in first-seen order.
func Groups(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0)
	for _, e := range entries {
		if _, ok := seen[e.Group]; ok {
			continue
		}
		seen[e.Group] = struct{}{}
		out = append(out, e.Group)
	}
	return out
}
