package season

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthDay is a calendar day without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD".
func ParseMonthDay(raw string) (MonthDay, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q, expected MM-DD", raw)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return MonthDay{}, fmt.Errorf("invalid month in %q", raw)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > daysIn(time.Month(month)) {
		return MonthDay{}, fmt.Errorf("invalid day in %q", raw)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

func daysIn(m time.Month) int {
	// Leap year so that 02-29 is accepted.
	return time.Date(2024, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(d.Month), d.Day)
}

func (d MonthDay) ordinal() int {
	return int(d.Month)*100 + d.Day
}

// Rule picks the landing league for a date: InSeason while the date falls in
// [Start, End] (inclusive, wrapping across new year), OffSeason otherwise.
type Rule struct {
	InSeason  string
	OffSeason string
	Start     MonthDay
	End       MonthDay
}

func DefaultRule() Rule {
	return Rule{
		InSeason:  "mens-college-basketball",
		OffSeason: "wnba",
		Start:     MonthDay{Month: time.October, Day: 15},
		End:       MonthDay{Month: time.April, Day: 15},
	}
}

func NewRule(inSeason, offSeason, start, end string) (Rule, error) {
	if strings.TrimSpace(inSeason) == "" || strings.TrimSpace(offSeason) == "" {
		return Rule{}, fmt.Errorf("season destinations are required")
	}
	s, err := ParseMonthDay(start)
	if err != nil {
		return Rule{}, fmt.Errorf("parse season start: %w", err)
	}
	e, err := ParseMonthDay(end)
	if err != nil {
		return Rule{}, fmt.Errorf("parse season end: %w", err)
	}
	return Rule{InSeason: inSeason, OffSeason: offSeason, Start: s, End: e}, nil
}

// InSeasonOn uses the calendar day of t in t's own location.
func (r Rule) InSeasonOn(t time.Time) bool {
	day := MonthDay{Month: t.Month(), Day: t.Day()}.ordinal()
	start, end := r.Start.ordinal(), r.End.ordinal()
	if start <= end {
		return day >= start && day <= end
	}
	return day >= start || day <= end
}

// Destination always returns exactly one of InSeason or OffSeason.
func (r Rule) Destination(t time.Time) string {
	if r.InSeasonOn(t) {
		return r.InSeason
	}
	return r.OffSeason
}
