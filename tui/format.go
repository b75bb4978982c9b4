package tui

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats a duration as a human-readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTime formats a time for display.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatShortID returns the first 8 characters of an ID.
func FormatShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// OrDash returns s, or "-" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Plural returns "1 environment" / "2 environments".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// PadRight pads a string to the right to achieve the given width.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// HorizontalLine returns a horizontal line of the given width.
func HorizontalLine(width int) string {
	return strings.Repeat("─", width)
}

// TreePrefix returns the tree prefix for a list item.
func TreePrefix(isLast bool) string {
	if isLast {
		return "└─ "
	}
	return "├─ "
}
