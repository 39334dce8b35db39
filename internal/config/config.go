package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level

	Endpoints Endpoints

	FetchTimeout               time.Duration
	FetchMaxRetries            int
	FetchRetryDelay            time.Duration
	FetchUserAgent             string
	FetchCircuitEnabled        bool
	FetchCircuitFailureCount   int
	FetchCircuitOpenTimeout    time.Duration
	FetchCircuitHalfOpenMaxReq int
	CacheEnabled               bool
	CacheTTLMinutes            time.Duration
	CacheTTLHours              time.Duration
	CacheTTLYear               time.Duration
	CacheMaxEntries            int
	CacheWarmEnabled           bool
	CacheWarmInterval          time.Duration
	CacheWarmWorkers           int
	SeasonInLeague             string
	SeasonOffLeague            string
	SeasonStart                string
	SeasonEnd                  string
	SeasonTimezone             *time.Location
	CollationLocale            string

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	BetterStackEnabled         bool
	BetterStackEndpoint        string
	BetterStackToken           string
	BetterStackTimeout         time.Duration
	BetterStackMinLevel        logging.Level
	BetterStackBatchSize       int
	BetterStackFlushInterval   time.Duration
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Endpoints is the single catalog of upstream base URLs. Every data-access
// operation builds its locator from one of these.
type Endpoints struct {
	Site      string `env:"ESPN_SITE_BASE_URL" envDefault:"https://site.api.espn.com/apis/site/v2/sports" validate:"required,url"`
	Standings string `env:"ESPN_STANDINGS_BASE_URL" envDefault:"https://site.api.espn.com/apis/v2/sports" validate:"required,url"`
	Core      string `env:"ESPN_CORE_BASE_URL" envDefault:"https://sports.core.api.espn.com/v2/sports" validate:"required,url"`
	Web       string `env:"ESPN_WEB_BASE_URL" envDefault:"https://site.web.api.espn.com/apis/common/v3/sports" validate:"required,url"`
}

func LoadEndpoints() (Endpoints, error) {
	var endpoints Endpoints
	if err := env.Parse(&endpoints); err != nil {
		return Endpoints{}, fmt.Errorf("parse endpoints: %w", err)
	}
	endpoints.Site = strings.TrimRight(strings.TrimSpace(endpoints.Site), "/")
	endpoints.Standings = strings.TrimRight(strings.TrimSpace(endpoints.Standings), "/")
	endpoints.Core = strings.TrimRight(strings.TrimSpace(endpoints.Core), "/")
	endpoints.Web = strings.TrimRight(strings.TrimSpace(endpoints.Web), "/")

	if err := validator.New().Struct(endpoints); err != nil {
		return Endpoints{}, fmt.Errorf("validate endpoints: %w", err)
	}
	return endpoints, nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	endpoints, err := LoadEndpoints()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "courtside-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		Endpoints:          endpoints,
		FetchUserAgent:     strings.TrimSpace(getEnv("FETCH_USER_AGENT", "courtside/1.0")),
		SeasonInLeague:     strings.TrimSpace(getEnv("SEASON_IN_LEAGUE", "mens-college-basketball")),
		SeasonOffLeague:    strings.TrimSpace(getEnv("SEASON_OFF_LEAGUE", "wnba")),
		SeasonStart:        strings.TrimSpace(getEnv("SEASON_START", "10-15")),
		SeasonEnd:          strings.TrimSpace(getEnv("SEASON_END", "04-15")),
		CollationLocale:    strings.TrimSpace(getEnv("COLLATION_LOCALE", "en")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	if cfg.SwaggerEnabled, err = strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault)); err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	if err := loadFetch(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadCache(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadSeason(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFetch(cfg *Config) error {
	var err error
	if cfg.FetchTimeout, err = positiveDuration("FETCH_TIMEOUT", "20s"); err != nil {
		return err
	}

	cfg.FetchMaxRetries, err = getEnvAsInt("FETCH_MAX_RETRIES", 1)
	if err != nil {
		return fmt.Errorf("parse FETCH_MAX_RETRIES: %w", err)
	}
	if cfg.FetchMaxRetries < 0 {
		return fmt.Errorf("FETCH_MAX_RETRIES must be >= 0")
	}

	cfg.FetchRetryDelay, err = time.ParseDuration(getEnv("FETCH_RETRY_DELAY", "0s"))
	if err != nil {
		return fmt.Errorf("parse FETCH_RETRY_DELAY: %w", err)
	}
	if cfg.FetchRetryDelay < 0 {
		return fmt.Errorf("FETCH_RETRY_DELAY must be >= 0")
	}

	cfg.FetchCircuitEnabled, err = strconv.ParseBool(getEnv("FETCH_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse FETCH_CIRCUIT_ENABLED: %w", err)
	}
	cfg.FetchCircuitFailureCount, err = getEnvAsInt("FETCH_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse FETCH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.FetchCircuitFailureCount < 1 {
		return fmt.Errorf("FETCH_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.FetchCircuitOpenTimeout, err = positiveDuration("FETCH_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return err
	}
	cfg.FetchCircuitHalfOpenMaxReq, err = getEnvAsInt("FETCH_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return fmt.Errorf("parse FETCH_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.FetchCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("FETCH_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	return nil
}

func loadCache(cfg *Config) error {
	var err error
	cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	if cfg.CacheTTLMinutes, err = positiveDuration("CACHE_TTL_MINUTES", "60s"); err != nil {
		return err
	}
	if cfg.CacheTTLHours, err = positiveDuration("CACHE_TTL_HOURS", "1h"); err != nil {
		return err
	}
	if cfg.CacheTTLYear, err = positiveDuration("CACHE_TTL_YEAR", "8760h"); err != nil {
		return err
	}
	cfg.CacheMaxEntries, err = getEnvAsInt("CACHE_MAX_ENTRIES", 4096)
	if err != nil {
		return fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cfg.CacheMaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be > 0")
	}

	cfg.CacheWarmEnabled, err = strconv.ParseBool(getEnv("CACHE_WARM_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CACHE_WARM_ENABLED: %w", err)
	}
	if cfg.CacheWarmInterval, err = positiveDuration("CACHE_WARM_INTERVAL", "30m"); err != nil {
		return err
	}
	cfg.CacheWarmWorkers, err = getEnvAsInt("CACHE_WARM_WORKERS", 4)
	if err != nil {
		return fmt.Errorf("parse CACHE_WARM_WORKERS: %w", err)
	}
	if cfg.CacheWarmWorkers < 1 {
		return fmt.Errorf("CACHE_WARM_WORKERS must be >= 1")
	}

	return nil
}

func loadSeason(cfg *Config) error {
	if cfg.SeasonInLeague == "" || cfg.SeasonOffLeague == "" {
		return fmt.Errorf("SEASON_IN_LEAGUE and SEASON_OFF_LEAGUE cannot be empty")
	}
	if cfg.CollationLocale == "" {
		return fmt.Errorf("COLLATION_LOCALE cannot be empty")
	}

	tz := strings.TrimSpace(getEnv("SEASON_TIMEZONE", "America/New_York"))
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("parse SEASON_TIMEZONE: %w", err)
	}
	cfg.SeasonTimezone = loc

	return nil
}

func loadObservability(cfg *Config) error {
	var err error

	cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	cfg.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	cfg.BetterStackEnabled, err = strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	cfg.BetterStackEndpoint = strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if cfg.BetterStackEnabled && cfg.BetterStackEndpoint == "" {
		return fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	cfg.BetterStackToken = strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", ""))
	if cfg.BetterStackTimeout, err = positiveDuration("BETTERSTACK_TIMEOUT", "3s"); err != nil {
		return err
	}
	cfg.BetterStackMinLevel = logging.ParseLevel(getEnv("BETTERSTACK_MIN_LEVEL", "warn"))
	cfg.BetterStackBatchSize, err = getEnvAsInt("BETTERSTACK_BATCH_SIZE", 50)
	if err != nil {
		return fmt.Errorf("parse BETTERSTACK_BATCH_SIZE: %w", err)
	}
	if cfg.BetterStackBatchSize < 1 {
		return fmt.Errorf("BETTERSTACK_BATCH_SIZE must be >= 1")
	}
	if cfg.BetterStackFlushInterval, err = positiveDuration("BETTERSTACK_FLUSH_INTERVAL", "2s"); err != nil {
		return err
	}

	cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}

	return nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
