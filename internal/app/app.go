package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/courtside/external/espn"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/domain/season"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
	"golang.org/x/text/language"
)

// Runtime is the wired service: the HTTP server and the background cache
// warmer it shares a fetcher with.
type Runtime struct {
	Server *http.Server
	Warmup *usecase.WarmupService
}

func NewRuntime(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	rule, err := season.NewRule(cfg.SeasonInLeague, cfg.SeasonOffLeague, cfg.SeasonStart, cfg.SeasonEnd)
	if err != nil {
		return nil, fmt.Errorf("build season rule: %w", err)
	}
	collation, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		return nil, fmt.Errorf("parse COLLATION_LOCALE %q: %w", cfg.CollationLocale, err)
	}
	location := cfg.SeasonTimezone
	if location == nil {
		location = time.UTC
	}

	fetcher := NewFetcher(cfg, logger)
	client := espn.NewClient(espn.ClientConfig{
		Fetcher:   fetcher,
		Endpoints: cfg.Endpoints,
		Logger:    logger,
	})

	seasonSvc, err := usecase.NewSeasonService(rule, location)
	if err != nil {
		return nil, fmt.Errorf("build season service: %w", err)
	}

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		LeagueService:    usecase.NewLeagueService(),
		TeamService:      usecase.NewTeamService(client, collation, logger),
		GameService:      usecase.NewGameService(client, location, nil),
		PlayerService:    usecase.NewPlayerService(client),
		StandingsService: usecase.NewStandingsService(client),
		SeasonService:    seasonSvc,
		Logger:           logger,
	})
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &Runtime{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Warmup: usecase.NewWarmupService(client, client, league.All(), cfg.CacheWarmWorkers, logger.Named("warmup")),
	}, nil
}

// NewFetcher builds the shared upstream fetcher from configuration.
func NewFetcher(cfg config.Config, logger *logging.Logger) *fetch.Fetcher {
	policy := fetch.CachePolicy{
		Enabled: cfg.CacheEnabled,
		Minutes: cfg.CacheTTLMinutes,
		Hours:   cfg.CacheTTLHours,
		Year:    cfg.CacheTTLYear,
	}

	return fetch.NewFetcher(fetch.Config{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: cfg.FetchMaxRetries,
		RetryDelay: cfg.FetchRetryDelay,
		UserAgent:  cfg.FetchUserAgent,
		Cache:      policy,
		Store:      cache.NewStore[fetch.Payload](cfg.CacheMaxEntries),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FetchCircuitEnabled,
			FailureThreshold: cfg.FetchCircuitFailureCount,
			OpenTimeout:      cfg.FetchCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FetchCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
}
