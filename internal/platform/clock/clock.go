package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// DateKeyLayout is the calendar-day key format used by every persisted aggregate.
const DateKeyLayout = "2006-01-02"

// NeverDays is reported by DaysSince when no previous timestamp exists.
const NeverDays = 999

// DateKey returns the local calendar day of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateKeyLayout)
}

// DaysSince counts whole elapsed 24h periods between past and now.
func DaysSince(now time.Time, past *time.Time) int {
	if past == nil || past.IsZero() {
		return NeverDays
	}
	elapsed := now.Sub(*past)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}
