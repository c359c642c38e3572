// SPDX-License-Identifier: MIT

package aggregation

import "slices"

// Reduce folds values with t. ok is false for None and for an empty group,
// which the caller shows as an empty cell.
//
// Behavior highlights:
//   - Median of an even-sized group is the mean of the two middle values.
//   - values is not modified.
//
// Complexity:
//   - O(n) for every type except Median, O(n log n).
func Reduce(t Type, values []float64) (v float64, ok bool) {
	if len(values) == 0 || t == None {
		return 0, false
	}
	switch t {
	case Count:
		return float64(len(values)), true
	case Sum, Mean:
		s := 0.0
		for _, x := range values {
			s += x
		}
		if t == Mean {
			s /= float64(len(values))
		}
		return s, true
	case Maximum:
		return slices.Max(values), true
	case Minimum:
		return slices.Min(values), true
	case Median:
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		n := len(sorted)
		if n%2 == 1 {
			return sorted[n/2], true
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2, true
	}

	return 0, false
}
