package service

import "time"

// Calendar carries the clinic's time settings. A nil Now uses time.Now and a
// nil Location uses time.Local.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
	Now       func() time.Time
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// now returns the current time in the clinic location
func (c Calendar) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.location())
}

// day returns midnight in the clinic location of the calendar date of t,
// taking t's year, month and day as written.
func (c Calendar) day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location())
}
