package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

const sport = "basketball"

// regularSeason is the upstream season type id for the regular season.
const regularSeason = "2"

type Resolver interface {
	Resolve(ctx context.Context, req fetch.Request) (fetch.Payload, error)
}

type ClientConfig struct {
	Fetcher   Resolver
	Endpoints config.Endpoints
	Logger    *logging.Logger
	Now       func() time.Time
}

// Client maps basketball data operations onto the upstream site, standings,
// core and web APIs. Every call goes through the shared fetcher.
type Client struct {
	fetcher   Resolver
	endpoints config.Endpoints
	logger    *logging.Logger
	now       func() time.Time
}

var (
	_ usecase.TeamProvider       = (*Client)(nil)
	_ usecase.GameProvider       = (*Client)(nil)
	_ usecase.PlayerProvider     = (*Client)(nil)
	_ usecase.LeagueDataProvider = (*Client)(nil)
)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		fetcher:   cfg.Fetcher,
		endpoints: cfg.Endpoints,
		logger:    logger.Named("espn"),
		now:       now,
	}
}

// operation is the per-endpoint cache class and failure policy.
type operation struct {
	name      string
	class     fetch.DurationClass
	onFailure fetch.Strategy
}

func (c *Client) get(ctx context.Context, op operation, base string, segments []string, query url.Values) (fetch.Payload, error) {
	if c.fetcher == nil {
		return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "%s: fetcher is not configured", op.name)
	}

	locator := fetch.BuildLocator(base, segments, query)
	payload, err := c.fetcher.Resolve(ctx, fetch.Request{
		Locator:   locator,
		Class:     op.class,
		OnFailure: op.onFailure,
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "espn %s", op.name)
	}
	if payload == nil {
		c.logger.DebugContext(ctx, "optional upstream section unavailable", "operation", op.name)
	}
	return payload, nil
}

func (c *Client) sitePath(l league.League, rest ...string) []string {
	return append([]string{sport, l.ID}, rest...)
}

func (c *Client) corePath(l league.League, rest ...string) []string {
	return append([]string{sport, "leagues", l.ID}, rest...)
}

func (c *Client) seasonOrCurrent(l league.League, season string) (string, error) {
	season = strings.TrimSpace(season)
	if season == "" {
		return strconv.Itoa(l.SeasonYear(c.now())), nil
	}
	if err := validateSeason(season); err != nil {
		return "", err
	}
	return season, nil
}

func validateLeague(l league.League) error {
	if _, ok := league.Lookup(l.ID); !ok {
		return fmt.Errorf("%w: unsupported league %q", usecase.ErrInvalidInput, l.ID)
	}
	return nil
}

func validateID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s id is required", usecase.ErrInvalidInput, kind)
	}
	if len(id) > 20 || !isDigits(id) {
		return fmt.Errorf("%w: %s id %q must be numeric", usecase.ErrInvalidInput, kind, id)
	}
	return nil
}

func validateSeason(season string) error {
	if len(season) != 4 || !isDigits(season) {
		return fmt.Errorf("%w: season %q must be a four digit year", usecase.ErrInvalidInput, season)
	}
	return nil
}

// ValidateDate accepts the upstream YYYYMMDD date form.
func ValidateDate(date string) error {
	if len(date) != 8 || !isDigits(date) {
		return fmt.Errorf("%w: date %q must be YYYYMMDD", usecase.ErrInvalidInput, date)
	}
	if _, err := time.Parse("20060102", date); err != nil {
		return fmt.Errorf("%w: date %q is not a calendar day", usecase.ErrInvalidInput, date)
	}
	return nil
}

func isDigits(v string) bool {
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return v != ""
}
