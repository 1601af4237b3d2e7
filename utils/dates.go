package utils

import (
	"fmt"
	"time"
)

// FormatDate renders a timestamp as a short en-US date with time,
// e.g. "Mar 10, 2:30 PM".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 3:04 PM")
}

// FormatDateMMDDYYYY renders a timestamp as "03/10/2025".
func FormatDateMMDDYYYY(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatTimeAgo derives a relative age label from a creation timestamp:
// "Just now" under a minute, minutes under an hour, hours under a day,
// then the absolute short date. Recomputed on every call, never stored.
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return FormatDate(t)
	}
}
