package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders done/total as a bar of width cells plus a percentage:
// the filled part in the success colour, the rest muted.
func (s Styles) ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	width = max(width, 5)
	ratio := float64(done) / float64(total)
	filled := min(int(ratio*float64(width)), width)

	return s.Success.Render(strings.Repeat("█", filled)) +
		s.Muted.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", int(ratio*100))
}
