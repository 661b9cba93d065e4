package pay

import "math"

// progressiveTax walks the bracket schedule, taxing each slice of the total
// at its bracket rate.
func progressiveTax(total float64) float64 {
	if total <= 0 {
		return 0
	}

	remaining := total
	tax := 0.0
	previous := 0.0

	for _, bracket := range taxBrackets {
		if remaining <= 0 {
			break
		}
		amount := math.Min(remaining, bracket.Threshold-previous)
		tax += amount * bracket.Rate
		remaining -= amount
		previous = bracket.Threshold
	}
	return tax
}
