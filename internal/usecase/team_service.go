package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
)

// TeamPage bundles everything a team page renders. Team, Roster and Schedule
// are required; News and Injuries are nil when the upstream could not serve
// them.
type TeamPage struct {
	League   league.League `json:"league"`
	Team     fetch.Payload `json:"team"`
	Roster   fetch.Payload `json:"roster"`
	Schedule fetch.Payload `json:"schedule"`
	News     fetch.Payload `json:"news"`
	Injuries fetch.Payload `json:"injuries"`
}

type TeamService struct {
	teams     TeamProvider
	collation language.Tag
	logger    *logging.Logger
}

func NewTeamService(teams TeamProvider, collation language.Tag, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teams:     teams,
		collation: collation,
		logger:    logger,
	}
}

// ListTeams returns the league's teams ordered by display name.
func (s *TeamService) ListTeams(ctx context.Context, leagueSlug string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("league", l.ID))

	payload, err := s.teams.Teams(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list teams league=%s: %w", l.ID, err)
	}

	teams := mapTeams(payload)
	team.SortByDisplayName(teams, s.collation)
	return teams, nil
}

// RawTeams returns the upstream teams document, or an error object payload
// when the upstream failed.
func (s *TeamService) RawTeams(ctx context.Context, leagueSlug string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RawTeams")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.teams.TeamsOrError(ctx, l)
}

func (s *TeamService) GetTeamPage(ctx context.Context, leagueSlug, teamID string) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamPage")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return TeamPage{}, err
	}
	teamID = strings.TrimSpace(teamID)
	span.SetAttributes(attribute.String("league", l.ID), attribute.String("team_id", teamID))

	page := TeamPage{League: l}
	p := newSectionPool(ctx)
	p.Go(func(ctx context.Context) (err error) {
		page.Team, err = s.teams.Team(ctx, l, teamID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Roster, err = s.teams.TeamRoster(ctx, l, teamID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Schedule, err = s.teams.TeamSchedule(ctx, l, teamID, "")
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.News, err = s.teams.TeamNews(ctx, l, teamID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		page.Injuries, err = s.teams.TeamInjuries(ctx, l, teamID)
		return err
	})
	if err := p.Wait(); err != nil {
		return TeamPage{}, fmt.Errorf("team page league=%s team=%s: %w", l.ID, teamID, err)
	}
	if page.News == nil || page.Injuries == nil {
		s.logger.DebugContext(ctx, "team page missing optional sections",
			"league", l.ID,
			"team_id", teamID,
			"news", page.News != nil,
			"injuries", page.Injuries != nil,
		)
	}

	return page, nil
}

func (s *TeamService) Roster(ctx context.Context, leagueSlug, teamID string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Roster")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.teams.TeamRoster(ctx, l, strings.TrimSpace(teamID))
}

func (s *TeamService) Schedule(ctx context.Context, leagueSlug, teamID, season string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Schedule")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.teams.TeamSchedule(ctx, l, strings.TrimSpace(teamID), strings.TrimSpace(season))
}

func (s *TeamService) Record(ctx context.Context, leagueSlug, season, teamID string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Record")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.teams.TeamRecord(ctx, l, strings.TrimSpace(season), strings.TrimSpace(teamID))
}

func (s *TeamService) Leaders(ctx context.Context, leagueSlug, season, teamID string) (fetch.Payload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Leaders")
	defer span.End()

	l, err := resolveLeague(leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.teams.TeamLeaders(ctx, l, strings.TrimSpace(season), strings.TrimSpace(teamID))
}
