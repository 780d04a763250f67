// Package format renders span counts and percentages for display. Every
// consumer of simulation results is expected to show the same strings, so
// the rendering rules live here rather than in clients.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	billion  = 1e9
	million  = 1e6
	thousand = 1e3
)

// Count abbreviates large counts to two decimals with a magnitude suffix.
// Values under one thousand are rendered as grouped integers ("1,234" style
// grouping applies once counts re-enter the integer range after rounding).
func Count(v float64) string {
	switch {
	case v >= billion:
		return fmt.Sprintf("%.2fB", v/billion)
	case v >= million:
		return fmt.Sprintf("%.2fM", v/million)
	case v >= thousand:
		return fmt.Sprintf("%.2fK", v/thousand)
	default:
		return humanize.Comma(int64(math.Round(v)))
	}
}

// Percent renders a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
