package ui

import (
	"fmt"
	"strconv"
	"time"
)

// FormatNumber abbreviates counts: 1500 is "1.5K", 2300000 is "2.3M".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

// FormatDate renders an RFC 3339 timestamp as "Jan 2006" in the local zone.
// Unparseable input falls back to its first seven characters (YYYY-MM).
func FormatDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if len(s) > 7 {
			return s[:7]
		}
		return s
	}
	return t.Local().Format("Jan 2006")
}

// FormatRelativeTime renders an RFC 3339 timestamp relative to now, e.g.
// "3 days ago". A month is 30 days.
func FormatRelativeTime(s string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "Recently"
	}
	d := now.Sub(t)
	days := int(d.Hours() / 24)

	switch {
	case days > 30:
		return fmt.Sprintf("%d months ago", days/30)
	case days > 0:
		return fmt.Sprintf("%d days ago", days)
	case int(d.Hours()) > 0:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case int(d.Minutes()) > 0:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	default:
		return "Just now"
	}
}
