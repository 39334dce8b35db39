package fetch

import (
	"errors"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
)

// Kind classifies why an upstream fetch failed.
type Kind string

const (
	KindTransientNetwork  Kind = "transient_network"
	KindUpstreamServer    Kind = "upstream_server"
	KindUpstreamClient    Kind = "upstream_client"
	KindMalformedResponse Kind = "malformed_response"
)

var (
	ErrTransientNetwork  = crerr.New("transient network error")
	ErrUpstreamServer    = crerr.New("upstream server error")
	ErrUpstreamClient    = crerr.New("upstream client error")
	ErrMalformedResponse = crerr.New("malformed upstream response")
	ErrNotFound          = crerr.New("upstream resource not found")
	ErrInvalidRequest    = crerr.New("invalid fetch request")
)

// Error is the typed failure returned by Fetcher. It matches the Err* sentinels
// of its kind through errors.Is.
type Error struct {
	Kind       Kind
	StatusCode int
	Locator    string
	Attempts   int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if sentinel := sentinelFor(e.Kind); sentinel != nil {
		msg = sentinel.Error()
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: status=%d", msg, e.StatusCode)
	}
	if e.Body != "" {
		msg += " body=" + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	if target == ErrNotFound {
		return e.StatusCode == http.StatusNotFound
	}
	sentinel := sentinelFor(e.Kind)
	return sentinel != nil && target == sentinel
}

// Retryable reports whether one more attempt may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransientNetwork, KindUpstreamServer:
		return true
	default:
		return false
	}
}

func sentinelFor(kind Kind) error {
	switch kind {
	case KindTransientNetwork:
		return ErrTransientNetwork
	case KindUpstreamServer:
		return ErrUpstreamServer
	case KindUpstreamClient:
		return ErrUpstreamClient
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return nil
	}
}

// KindOf extracts the failure kind from err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// IsRetryable reports whether err is a fetch error worth one more attempt.
func IsRetryable(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Retryable()
}

func classifyStatus(code int) Kind {
	switch {
	case code >= 500, code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return KindUpstreamServer
	default:
		return KindUpstreamClient
	}
}
