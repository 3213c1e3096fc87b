package ui

import (
	"fmt"
	"strconv"
)

// FormatCounts renders the population tally shown in the status line.
func FormatCounts(red, blue, empty int) string {
	return fmt.Sprintf("red %d  blue %d  empty %d", red, blue, empty)
}

// FormatStatus renders the per-step portion of the status line.
func FormatStatus(steps, moves int, threshold float64) string {
	return fmt.Sprintf("step %d  moved %d  threshold %s", steps, moves, FormatThreshold(threshold))
}

// FormatThreshold renders a threshold with two decimals, the resolution of
// the keyboard adjustment step.
func FormatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', 2, 64)
}

// FormatSatisfaction renders the diagnostic tail of the status block.
func FormatSatisfaction(dissatisfied int, meanSameKind float64) string {
	return fmt.Sprintf("dissatisfied %d  same-kind %.3f", dissatisfied, meanSameKind)
}

// StateLabel names the macro state of the model: active while agents still
// want to move, stable once nobody does.
func StateLabel(stable bool) string {
	if stable {
		return "stable"
	}
	return "active"
}
