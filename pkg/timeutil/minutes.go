// Package timeutil holds small duration helpers for display.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatMinutes renders a minute count using hour/minute tokens, for
// example 75 -> "1h15m". Counts under an hour stay plain ("45m").
func FormatMinutes(mins int) string {
	if mins <= 0 {
		return "0m"
	}
	d := time.Duration(mins) * time.Minute

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"h", time.Hour},
		{"m", time.Minute},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}
