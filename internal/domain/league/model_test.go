package league

import (
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"ncaam", "mens-college-basketball", " NCAAM "} {
		got, ok := Lookup(key)
		if !ok || got.ID != MensCollege {
			t.Fatalf("Lookup(%q)=%+v,%v", key, got, ok)
		}
	}
	if _, ok := Lookup("nfl"); ok {
		t.Fatalf("expected unknown league to miss")
	}
	if _, ok := Lookup(""); ok {
		t.Fatalf("expected empty key to miss")
	}
}

func TestAll_CatalogIsValid(t *testing.T) {
	t.Parallel()

	leagues := All()
	if len(leagues) != 4 {
		t.Fatalf("expected 4 leagues, got %d", len(leagues))
	}
	for _, l := range leagues {
		if err := l.Validate(); err != nil {
			t.Fatalf("invalid catalog entry %+v: %v", l, err)
		}
		if l.HasRankings != l.IsCollege() {
			t.Fatalf("rankings flag mismatch for %s", l.ID)
		}
	}

	leagues[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Fatalf("All must return a copy")
	}
}

func TestSeasonYear(t *testing.T) {
	t.Parallel()

	nba, _ := Lookup(NBA)
	wnba, _ := Lookup(WNBA)
	nov := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	if got := nba.SeasonYear(nov); got != 2026 {
		t.Fatalf("expected NBA November 2025 to be season 2026, got %d", got)
	}
	if got := nba.SeasonYear(mar); got != 2026 {
		t.Fatalf("expected NBA March 2026 to be season 2026, got %d", got)
	}
	if got := wnba.SeasonYear(nov); got != 2025 {
		t.Fatalf("expected WNBA to use calendar year, got %d", got)
	}
}
