package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Window names a relative time range used to filter listings
type Window string

const (
	WindowToday     Window = "today"
	WindowThisWeek  Window = "thisWeek"
	WindowThisMonth Window = "thisMonth"
	WindowAll       Window = "all"
)

// ErrUnknownWindow is returned by ParseWindow for names it does not recognise
var ErrUnknownWindow = errors.New("unknown time window")

// ParseWindow converts a query value into a Window. An empty name means WindowAll.
func ParseWindow(name string) (Window, error) {
	switch w := Window(strings.TrimSpace(name)); w {
	case "":
		return WindowAll, nil
	case WindowToday, WindowThisWeek, WindowThisMonth, WindowAll:
		return w, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
}

// ParseWeekday parses an English weekday name such as "sunday" or "Mon"
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if n == full || n == full[:3] {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}

// FilterByWindow keeps the records whose date falls inside w relative to now.
// Dates are compared by calendar day in now's location. Records with a zero
// date only pass WindowAll.
func FilterByWindow[T any](records []T, w Window, now time.Time, weekStart time.Weekday, date func(T) time.Time) []T {
	out := make([]T, 0, len(records))
	if w == WindowAll || w == "" {
		return append(out, records...)
	}

	loc := now.Location()
	today := startOfDay(now)
	weekBegin := today.AddDate(0, 0, -((int(today.Weekday()) - int(weekStart) + 7) % 7))

	for _, r := range records {
		d := date(r)
		if d.IsZero() {
			continue
		}
		day := startOfDay(d.In(loc))

		var keep bool
		switch w {
		case WindowToday:
			keep = day.Equal(today)
		case WindowThisWeek:
			keep = !day.Before(weekBegin) && !day.After(today)
		case WindowThisMonth:
			keep = day.Year() == today.Year() && day.Month() == today.Month()
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// SameDay reports whether a and b fall on the same calendar day in b's location
func SameDay(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	return startOfDay(a.In(b.Location())).Equal(startOfDay(b))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
