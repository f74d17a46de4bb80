// Package countdown provides the calendar arithmetic behind the birthday
// countdown: breaking the distance to a target date into day/hour/minute/
// second components and deciding whether "today is the day".
//
// All comparisons happen in a single fixed timezone. Mixing a zoned "now"
// with a naive target silently shifts the countdown by the UTC offset, so
// callers are expected to build the target with ParseTarget and pass
// instants from the same clock.
package countdown

import (
	"fmt"
	"math"
	"time"
)

// DefaultTimezone is the IANA zone the countdown is anchored to.
const DefaultTimezone = "Asia/Kolkata"

// istOffset is the fixed IST offset (UTC+5:30) used when the tz database
// is unavailable. IST has no DST rules, so a fixed zone is exact.
const istOffset = 5*60*60 + 30*60

// Snapshot is a day/hour/minute/second breakdown of the time remaining
// until the target. Days is negative once the target has passed.
type Snapshot struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Location returns the zone for the given IANA name, falling back to a
// fixed UTC+5:30 zone for the default timezone when tzdata is missing.
func Location(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == DefaultTimezone {
			return time.FixedZone("IST", istOffset), nil
		}
		return nil, fmt.Errorf("loading timezone %s: %w", name, err)
	}
	return loc, nil
}

// ParseTarget parses a YYYY-MM-DD date as local midnight in loc.
func ParseTarget(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing target date %q: %w", date, err)
	}
	return t, nil
}

// Until returns the countdown breakdown from now to target.
//
// Days is the floor of the real-valued day difference. The hour, minute and
// second components are each computed from the full duration and reduced
// modulo their unit, rather than from successively truncated remainders.
func Until(target, now time.Time) Snapshot {
	diff := target.Sub(now)
	days := int(math.Floor(diff.Hours() / 24))

	abs := diff
	if abs < 0 {
		abs = -abs
	}
	total := int64(abs / time.Second)

	return Snapshot{
		Days:    days,
		Hours:   int(total/3600) % 24,
		Minutes: int(total/60) % 60,
		Seconds: int(total) % 60,
	}
}

// DaysUntil returns the whole-day component of the countdown.
func DaysUntil(target, now time.Time) int {
	return Until(target, now).Days
}

// SameCalendarDay reports whether now and target fall on the same month and
// day-of-month when projected into loc. The year is ignored so a recurring
// date matches every year.
func SameCalendarDay(target, now time.Time, loc *time.Location) bool {
	t := target.In(loc)
	n := now.In(loc)
	return t.Day() == n.Day() && t.Month() == n.Month()
}
