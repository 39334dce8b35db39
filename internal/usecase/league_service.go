package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
)

type LeagueService struct {
	leagues []league.League
}

func NewLeagueService() *LeagueService {
	return &LeagueService{leagues: league.All()}
}

func (s *LeagueService) ListLeagues(ctx context.Context) []league.League {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	out := make([]league.League, len(s.leagues))
	copy(out, s.leagues)
	return out
}

// Resolve accepts either the short slug ("ncaam") or the upstream segment.
func (s *LeagueService) Resolve(ctx context.Context, slug string) (league.League, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.Resolve")
	defer span.End()

	return resolveLeague(slug)
}

func resolveLeague(slug string) (league.League, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return league.League{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}
	l, ok := league.Lookup(slug)
	if !ok {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, slug)
	}
	return l, nil
}
