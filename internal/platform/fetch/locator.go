package fetch

import (
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// BuildLocator joins base with escaped path segments and an encoded query.
// Empty segments are skipped and the query is sorted by key, so the same
// logical resource always yields the same locator (and cache entry).
func BuildLocator(base string, segments []string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(strings.TrimRight(strings.TrimSpace(base), "/"))
	for _, segment := range segments {
		segment = strings.Trim(strings.TrimSpace(segment), "/")
		if segment == "" {
			continue
		}
		_ = buf.WriteByte('/')
		_, _ = buf.WriteString(url.PathEscape(segment))
	}

	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}

	return buf.String()
}

func validateLocator(locator string) error {
	if strings.TrimSpace(locator) == "" {
		return crerr.Wrap(ErrInvalidRequest, "locator is required")
	}
	parsed, err := url.Parse(locator)
	if err != nil {
		return crerr.Wrapf(ErrInvalidRequest, "parse locator: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return crerr.Wrapf(ErrInvalidRequest, "locator scheme %q is not http(s)", parsed.Scheme)
	}
	if parsed.Host == "" {
		return crerr.Wrap(ErrInvalidRequest, "locator host is empty")
	}
	return nil
}

func redactLocator(locator string) string {
	const maxLen = 512
	if len(locator) <= maxLen {
		return locator
	}
	return locator[:maxLen] + "..."
}
