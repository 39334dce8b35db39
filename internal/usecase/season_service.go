package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/season"
)

// SeasonDestination is where the landing route sends a visitor.
type SeasonDestination struct {
	League   league.League `json:"league"`
	Path     string        `json:"path"`
	InSeason bool          `json:"inSeason"`
}

type SeasonService struct {
	rule      season.Rule
	inSeason  league.League
	offSeason league.League
	location  *time.Location
}

func NewSeasonService(rule season.Rule, location *time.Location) (*SeasonService, error) {
	in, ok := league.Lookup(rule.InSeason)
	if !ok {
		return nil, fmt.Errorf("%w: unknown in-season league %q", ErrInvalidInput, rule.InSeason)
	}
	off, ok := league.Lookup(rule.OffSeason)
	if !ok {
		return nil, fmt.Errorf("%w: unknown off-season league %q", ErrInvalidInput, rule.OffSeason)
	}
	if location == nil {
		location = time.UTC
	}

	return &SeasonService{
		rule:      rule,
		inSeason:  in,
		offSeason: off,
		location:  location,
	}, nil
}

// Destination evaluates the rule on the calendar day of now in the service
// location.
func (s *SeasonService) Destination(ctx context.Context, now time.Time) SeasonDestination {
	_, span := startUsecaseSpan(ctx, "usecase.SeasonService.Destination")
	defer span.End()

	local := now.In(s.location)
	target := s.offSeason
	inSeason := s.rule.InSeasonOn(local)
	if inSeason {
		target = s.inSeason
	}

	return SeasonDestination{
		League:   target,
		Path:     scoreboardPath(target),
		InSeason: inSeason,
	}
}

func (s *SeasonService) RedirectPath(ctx context.Context, now time.Time) string {
	return s.Destination(ctx, now).Path
}

func scoreboardPath(l league.League) string {
	return "/v1/" + l.Slug + "/scoreboard"
}
