package chamber

import (
	"fmt"
	"math"
)

// FormatHMS renders seconds as HH:MM:SS. Negative input renders as zero.
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// EstimateDisplay renders a drying time in minutes as HH:MM:00.
func EstimateDisplay(minutes int) string {
	return FormatHMS(minutes * 60)
}

// ProgressPercent is round(100*elapsed/total), clamped to [0,100].
func ProgressPercent(total, remaining int) int {
	if total <= 0 {
		return 0
	}
	elapsed := total - remaining
	p := int(math.Round(100 * float64(elapsed) / float64(total)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
