package cache

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPolicy is returned by ParsePolicy for strings that are neither
// "never", a "HH:MM" time, nor an integer number of seconds.
var ErrInvalidPolicy = errors.New("invalid refresh policy")

type policyKind int

const (
	policyNever policyKind = iota
	policyInterval
	policyDaily
)

// RefreshPolicy decides when a memoized value is stale. The zero value is
// Never.
type RefreshPolicy struct {
	kind     policyKind
	interval time.Duration
	hour     int
	minute   int
}

// Never caches the first successful computation forever.
func Never() RefreshPolicy {
	return RefreshPolicy{kind: policyNever}
}

// Every declares a value stale d after its last successful computation.
func Every(d time.Duration) RefreshPolicy {
	return RefreshPolicy{kind: policyInterval, interval: d}
}

// DailyAt declares a value stale once per day after the given wall-clock
// time. Hour and minute are interpreted in local time.
func DailyAt(hour, minute int) RefreshPolicy {
	return RefreshPolicy{kind: policyDaily, hour: hour, minute: minute}
}

// ParsePolicy builds a RefreshPolicy from a configuration string: "never"
// (case-insensitive), "HH:MM", or an integer number of seconds.
func ParsePolicy(s string) (RefreshPolicy, error) {
	if strings.EqualFold(strings.TrimSpace(s), "never") {
		return Never(), nil
	}

	if hh, mm, ok := strings.Cut(s, ":"); ok {
		hour, errH := strconv.Atoi(hh)
		minute, errM := strconv.Atoi(mm)
		if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return RefreshPolicy{}, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidPolicy, s)
		}
		return DailyAt(hour, minute), nil
	}

	secs, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || secs < 0 {
		return RefreshPolicy{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
	return Every(time.Duration(secs) * time.Second), nil
}

// stale reports whether a value computed at lastUpdated should be refreshed
// at now. A zero lastUpdated always refreshes.
func (p RefreshPolicy) stale(lastUpdated, now time.Time) bool {
	if lastUpdated.IsZero() {
		return true
	}
	switch p.kind {
	case policyInterval:
		return !lastUpdated.Add(p.interval).After(now)
	case policyDaily:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		scheduled := time.Date(now.Year(), now.Month(), now.Day(), p.hour, p.minute, 0, 0, now.Location())
		return lastUpdated.Before(today) && scheduled.Before(now)
	default:
		return false
	}
}
