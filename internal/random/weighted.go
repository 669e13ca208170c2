package random

// WeightedPick walks weights left to right and returns the first option whose
// cumulative weight is strictly greater than roll. When no threshold is
// crossed, for example because the weights sum to less than roll, the first
// option is returned. options must not be empty.
func WeightedPick[T any](options []T, weights []float64, roll float64) T {
	cumulative := 0.0
	for i, w := range weights {
		if i >= len(options) {
			break
		}
		cumulative += w
		if roll < cumulative {
			return options[i]
		}
	}
	return options[0]
}
