// SPDX-License-Identifier: MIT

package view

import "math"

// ValueFilter hides cells by value. The zero value shows everything.
type ValueFilter struct {
	Enabled bool
	Min     float64
	Max     float64
	// Exclude hides values inside [Min, Max] instead of outside.
	Exclude bool
	// Absolute compares |v| instead of v.
	Absolute bool
}

// NewValueFilter returns an enabled filter over [lo, hi].
func NewValueFilter(lo, hi float64) ValueFilter {
	return ValueFilter{Enabled: true, Min: lo, Max: hi}
}

// Accepts reports whether v is shown. NaN is never shown by an enabled filter.
func (f ValueFilter) Accepts(v float64) bool {
	if !f.Enabled {
		return true
	}
	if math.IsNaN(v) {
		return false
	}
	if f.Absolute {
		v = math.Abs(v)
	}
	inside := v >= f.Min && v <= f.Max
	if f.Exclude {
		return !inside
	}

	return inside
}
