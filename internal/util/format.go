package util //nolint:revive // package name util hosts shared formatting helpers used across CLI views

import (
	"fmt"
	"time"
)

const (
	hoursPerDay      = 24
	daysBeforeMonths = 30
)

// FormatRelative renders how long ago t was, for listing views. Dates older
// than a month fall back to the plain date.
func FormatRelative(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < hoursPerDay*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < daysBeforeMonths*hoursPerDay*time.Hour:
		return plural(int(diff.Hours())/hoursPerDay, "day")
	default:
		return t.Format("2 January 2006")
	}
}

// FormatDateTime renders a timestamp for detail views in the local timezone.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2 January 2006 15:04")
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
