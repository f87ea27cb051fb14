package domain

import (
	"math"
	"sort"
)

// NextScale advances to the next larger declared scale value, wrapping to
// the smallest past the top. Ordering is by value, not declaration order.
// When current matches none of the declared values within tolerance the
// smallest value is returned and fallback is true so the caller can
// report it.
func NextScale(scaleValues []float64, current float64) (next float64, fallback bool) {
	sorted := append([]float64(nil), scaleValues...)
	sort.Float64s(sorted)

	for i, v := range sorted {
		if math.Abs(v-current) < scaleTolerance {
			return sorted[(i+1)%len(sorted)], false
		}
	}

	return sorted[0], true
}
