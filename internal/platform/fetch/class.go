package fetch

import "time"

// DurationClass is a coarse freshness category for a cached upstream response.
type DurationClass int

const (
	ClassNone DurationClass = iota
	ClassMinutes
	ClassHours
	ClassYear
)

func (c DurationClass) String() string {
	switch c {
	case ClassMinutes:
		return "minutes"
	case ClassHours:
		return "hours"
	case ClassYear:
		return "year"
	default:
		return "none"
	}
}

// CachePolicy maps duration classes to concrete TTLs.
type CachePolicy struct {
	Enabled bool
	Minutes time.Duration
	Hours   time.Duration
	Year    time.Duration
}

func DefaultCachePolicy() CachePolicy {
	return CachePolicy{
		Enabled: true,
		Minutes: time.Minute,
		Hours:   time.Hour,
		Year:    365 * 24 * time.Hour,
	}
}

// TTL returns zero when the class must not be cached.
func (p CachePolicy) TTL(class DurationClass) time.Duration {
	if !p.Enabled {
		return 0
	}
	switch class {
	case ClassMinutes:
		return p.Minutes
	case ClassHours:
		return p.Hours
	case ClassYear:
		return p.Year
	default:
		return 0
	}
}

func cacheKey(class DurationClass, locator string) string {
	return class.String() + " " + locator
}
