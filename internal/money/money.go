package money

import "math"

// Round2 rounds a monetary value to 2 decimal places (half up on the scaled
// integer). Every number that leaves an engine result passes through this to
// keep float drift from compounding across the pipeline.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
