package util

import "math"

// Round2 rounds to two decimal places, the display precision for all scores.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place (percentages in the detailed export).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
