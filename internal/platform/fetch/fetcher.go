package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultTimeout   = 20 * time.Second
	maxResponseBytes = 6 << 20
	maxBodyInError   = 256
	defaultMaxCache  = 4096
)

type Config struct {
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	UserAgent      string
	Cache          CachePolicy
	MaxCacheSize   int
	Store          *cache.Store[Payload]
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Fetcher performs cached GET requests against JSON APIs with a bounded
// retry. It is safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	userAgent  string
	policy     CachePolicy
	store      *cache.Store[Payload]
	breaker    *resilience.CircuitBreaker
	logger     *logging.Logger
}

func NewFetcher(cfg Config) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	store := cfg.Store
	if store == nil {
		maxEntries := cfg.MaxCacheSize
		if maxEntries <= 0 {
			maxEntries = defaultMaxCache
		}
		store = cache.NewStore[Payload](maxEntries)
	}

	retryDelay := cfg.RetryDelay
	if retryDelay < 0 {
		retryDelay = 0
	}

	return &Fetcher{
		httpClient: httpClient,
		maxRetries: max(cfg.MaxRetries, 0),
		retryDelay: retryDelay,
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		policy:     cfg.Cache,
		store:      store,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		logger:     logger.Named("fetch"),
	}
}

// Fetch returns the JSON body at req.Locator. A cached body is returned while
// its duration class is fresh; otherwise the request is attempted and, on a
// retryable failure, attempted MaxRetries more times. Failures are always
// returned as errors; see Resolve for the per-request failure strategy.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (Payload, error) {
	ctx, span := startFetchSpan(ctx, "fetch.Fetcher.Fetch")
	defer span.End()

	if err := validateLocator(req.Locator); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("fetch.class", req.Class.String()),
		attribute.String("fetch.locator", redactLocator(req.Locator)),
	)

	ttl := f.policy.TTL(req.Class)
	key := cacheKey(req.Class, req.Locator)
	if ttl > 0 {
		if cached, ok := f.store.Get(ctx, key); ok {
			span.SetAttributes(attribute.Bool("fetch.cache_hit", true))
			return cached, nil
		}
	}

	return f.store.GetOrLoad(ctx, key, ttl, func(ctx context.Context) (Payload, error) {
		var payload Payload
		err := f.breaker.Guard(func() error {
			var loadErr error
			payload, loadErr = f.load(ctx, req.Locator)
			return loadErr
		}, IsRetryable)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			f.logger.WarnContext(ctx, "upstream circuit breaker rejected request",
				"locator", redactLocator(req.Locator),
				"state", f.breaker.State(),
			)
		}
		return payload, err
	})
}

// Resolve fetches req and applies req.OnFailure to a final failure.
func (f *Fetcher) Resolve(ctx context.Context, req Request) (Payload, error) {
	payload, err := f.Fetch(ctx, req)
	if err == nil {
		return payload, nil
	}

	switch req.OnFailure {
	case StrategyErrorObject:
		return ErrorObject(err.Error()), nil
	case StrategyUndefined:
		f.logger.WarnContext(ctx, "upstream fetch failed, continuing without payload",
			"locator", redactLocator(req.Locator),
			"error", err,
		)
		return nil, nil
	default:
		return nil, err
	}
}

func (f *Fetcher) load(ctx context.Context, locator string) (Payload, error) {
	attempts := 0
	var payload Payload

	err := retry.Do(
		func() error {
			attempts++
			raw, attemptErr := f.attempt(ctx, locator)
			if attemptErr != nil {
				return attemptErr
			}
			payload = raw
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(f.maxRetries+1)),
		retry.Delay(f.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			// retry-go also calls OnRetry after the final attempt.
			if int(n) >= f.maxRetries || !IsRetryable(err) {
				return
			}
			f.logger.DebugContext(ctx, "retrying upstream fetch",
				"locator", redactLocator(locator),
				"attempt", n+2,
				"error", err,
			)
		}),
	)
	if err == nil {
		return payload, nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		fe.Attempts = attempts
		f.logger.WarnContext(ctx, "upstream fetch failed",
			"locator", redactLocator(locator),
			"kind", string(fe.Kind),
			"status", fe.StatusCode,
			"attempts", fe.Attempts,
			"error", err,
		)
		return nil, fe
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, crerr.Wrap(ctxErr, "fetch cancelled")
	}
	return nil, crerr.Wrap(err, "fetch upstream")
}

func (f *Fetcher) attempt(ctx context.Context, locator string) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, retry.Unrecoverable(crerr.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: KindTransientNetwork, Locator: locator, Err: crerr.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: KindTransientNetwork, StatusCode: resp.StatusCode, Locator: locator, Err: crerr.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Locator:    locator,
			Body:       abbreviateBody(raw),
		}
	}

	if !gjson.ValidBytes(raw) {
		return nil, &Error{
			Kind:       KindMalformedResponse,
			StatusCode: resp.StatusCode,
			Locator:    locator,
			Body:       abbreviateBody(raw),
		}
	}

	return Payload(raw), nil
}

func abbreviateBody(body []byte) string {
	text := strings.Join(strings.Fields(string(body)), " ")
	if len(text) <= maxBodyInError {
		return text
	}
	return text[:maxBodyInError] + "..."
}
