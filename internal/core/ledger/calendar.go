package ledger

import "time"

const dayKeyLayout = "2006-01-02"

// Calendar maps instants onto local calendar days of an explicit location.
// Every day-based decision in the ledger (per-day grouping and window bounds)
// goes through it: a bound is the local midnight of its day and events are
// compared against bounds by full timestamp, half-open [start, end).
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a calendar for loc, falling back to UTC when loc is nil.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Location returns the calendar's time zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// DayKey returns the local calendar day of t as YYYY-MM-DD.
func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.Location()).Format(dayKeyLayout)
}

// StartOfDay returns local midnight of the day containing t.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	l := t.In(c.Location())
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, c.Location())
}

// NextDay returns local midnight of the day after the one containing t.
func (c Calendar) NextDay(t time.Time) time.Time {
	l := t.In(c.Location())
	return time.Date(l.Year(), l.Month(), l.Day()+1, 0, 0, 0, 0, c.Location())
}

// StartOfYear returns local midnight of January 1st of t's year.
func (c Calendar) StartOfYear(t time.Time) time.Time {
	l := t.In(c.Location())
	return time.Date(l.Year(), time.January, 1, 0, 0, 0, 0, c.Location())
}

// DaysBack returns local midnight n-1 days before the day containing t, so that
// the range [DaysBack(t, n), NextDay(t)) spans exactly n calendar days.
func (c Calendar) DaysBack(t time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	l := t.In(c.Location())
	return time.Date(l.Year(), l.Month(), l.Day()-(n-1), 0, 0, 0, 0, c.Location())
}

// ParseDay parses a YYYY-MM-DD string as local midnight.
func (c Calendar) ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, s, c.Location())
}
