package standing

import "testing"

func TestSort(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{TeamID: "1", TeamName: "Purdue", Group: "Big Ten", WinPercent: 0.700},
		{TeamID: "2", TeamName: "Duke", Group: "ACC", WinPercent: 0.800},
		{TeamID: "3", TeamName: "Iowa", Group: "Big Ten", WinPercent: 0.750},
		{TeamID: "4", TeamName: "Illinois", Group: "Big Ten", WinPercent: 0.750},
	}
	Sort(entries)

	want := []string{"2", "4", "3", "1"}
	for i, id := range want {
		if entries[i].TeamID != id {
			t.Fatalf("position %d: expected team %s, got %s", i, id, entries[i].TeamID)
		}
	}

	groups := Groups(entries)
	if len(groups) != 2 || groups[0] != "ACC" || groups[1] != "Big Ten" {
		t.Fatalf("unexpected groups %v", groups)
	}
}
