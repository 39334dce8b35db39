package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/standing"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
)

type StandingsView struct {
	League  league.League    `json:"league"`
	Season  string           `json:"season,omitempty"`
	Groups  []string         `json:"groups"`
	Entries []standing.Entry `json:"entries"`
	Raw     fetch.Payload    `json:"raw"`
}

type StandingsService struct {
	data LeagueDataProvider
}

func NewStandingsService(data LeagueDataProvider) *StandingsService {
	return &StandingsService{data: data}
}

func (s *StandingsService) Standings(ctx context.Context, leagueSlug, season string) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return StandingsView{}, err
	}
	season = strings.TrimSpace(season)

	payload, err := s.data.Standings(ctx, l, season)
	if err != nil {
		return StandingsView{}, fmt.Errorf("standings league=%s: %w", l.ID, err)
	}

	entries := mapStandings(payload)
	return StandingsView{
		League:  l,
		Season:  season,
		Groups:  standing.Groups(entries),
		Entries: entries,
		Raw:     payload,
	}, nil
}

// Rankings is only defined for leagues with a poll.
func (s *StandingsService) Rankings(ctx context.Context, leagueSlug string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Rankings")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	if !l.HasRankings {
		return nil, fmt.Errorf("%w: league %s has no rankings", ErrInvalidInput, l.Slug)
	}

	payload, err := s.data.Rankings(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("rankings league=%s: %w", l.ID, err)
	}
	return payload, nil
}

func (s *StandingsService) News(ctx context.Context, leagueSlug string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.News")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}

	payload, err := s.data.News(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("news league=%s: %w", l.ID, err)
	}
	return payload, nil
}

func (s *StandingsService) Seasons(ctx context.Context, leagueSlug string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Seasons")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}

	payload, err := s.data.Seasons(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("seasons league=%s: %w", l.ID, err)
	}
	return payload, nil
}
