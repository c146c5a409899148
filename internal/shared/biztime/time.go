// Package biztime provides utilities for shop timezone calculations.
// All storage and transport use UTC. The shop timezone is only used for
// calculating date boundaries (start/end of day) in reports and filters.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default shop timezone.
	DefaultTimezone = "Africa/Cairo"
)

var (
	shopLocation     *time.Location
	shopLocationOnce sync.Once
	initErr          error
)

// Init initializes the shop timezone. Should be called once at startup.
// If tz is empty, defaults to Africa/Cairo.
func Init(tz string) error {
	shopLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		shopLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the shop timezone location, auto-initializing with the
// default when Init was never called.
func Location() *time.Location {
	if shopLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return shopLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in the shop timezone,
// converted to UTC for queries.
func StartOfDayUTC(t time.Time) time.Time {
	st := t.In(Location())
	return time.Date(st.Year(), st.Month(), st.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the end of day in the shop timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	st := t.In(Location())
	return time.Date(st.Year(), st.Month(), st.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// ParseDate parses a date string (YYYY-MM-DD) as shop timezone midnight,
// then returns the UTC equivalent.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// DateRangeUTC resolves optional YYYY-MM-DD bounds into inclusive UTC
// instants covering whole shop-timezone days. A nil bound means unbounded.
func DateRangeUTC(startDate, endDate string) (start, end *time.Time, err error) {
	if startDate != "" {
		s, perr := ParseDate(startDate)
		if perr != nil {
			return nil, nil, perr
		}
		s = StartOfDayUTC(s.In(Location()))
		start = &s
	}
	if endDate != "" {
		e, perr := ParseDate(endDate)
		if perr != nil {
			return nil, nil, perr
		}
		e = EndOfDayUTC(e.In(Location()))
		end = &e
	}
	return start, end, nil
}

// ToShopTimezone converts a UTC time to the shop timezone for display.
func ToShopTimezone(t time.Time) time.Time {
	return t.In(Location())
}
