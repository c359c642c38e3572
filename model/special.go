// SPDX-License-Identifier: MIT

package model

import (
	"math"
	"strconv"
)

// Special classifies a value against the solver's sentinel set.
type Special uint8

const (
	// Regular is an ordinary finite number.
	Regular Special = iota
	// PlusInf is the solver's +INF.
	PlusInf
	// MinusInf is the solver's -INF.
	MinusInf
	// Eps is the solver's EPS (a structural zero that counts as nonzero).
	Eps
	// NA is "not available".
	NA
	// Undf is "undefined".
	Undf
)

var specialNames = [...]string{"", "+INF", "-INF", "EPS", "NA", "UNDF"}

// String returns the display text of s ("" for Regular).
func (s Special) String() string {
	if int(s) < len(specialNames) {
		return specialNames[s]
	}

	return "Special(" + strconv.Itoa(int(s)) + ")"
}

// Default sentinel values, matching a solver running in IEEE mode.
const (
	// DefaultUndf is the solver's UNDF marker.
	DefaultUndf = 1.0e300

	// DefaultEps is the smallest positive float, which is how EPS arrives in IEEE mode.
	DefaultEps = math.SmallestNonzeroFloat64
)

// SpecialValues holds the concrete numbers the solver uses for its sentinels.
type SpecialValues struct {
	PlusInf  float64 `yaml:"plus_inf"`
	MinusInf float64 `yaml:"minus_inf"`
	Eps      float64 `yaml:"eps"`
	NA       float64 `yaml:"na"`
	Undf     float64 `yaml:"undf"`
}

// DefaultSpecialValues returns the IEEE sentinel set.
func DefaultSpecialValues() SpecialValues {
	return SpecialValues{
		PlusInf:  math.Inf(1),
		MinusInf: math.Inf(-1),
		Eps:      DefaultEps,
		NA:       math.NaN(),
		Undf:     DefaultUndf,
	}
}

// Classify maps v to its Special kind. Any NaN is NA and any infinity is
// ±INF, whatever the configured sentinels are.
func (sv SpecialValues) Classify(v float64) Special {
	switch {
	case math.IsNaN(v) || same(v, sv.NA):
		return NA
	case math.IsInf(v, 1) || same(v, sv.PlusInf):
		return PlusInf
	case math.IsInf(v, -1) || same(v, sv.MinusInf):
		return MinusInf
	case same(v, sv.Eps):
		return Eps
	case same(v, sv.Undf):
		return Undf
	default:
		return Regular
	}
}

// Value returns the configured number for s (0 for Regular).
func (sv SpecialValues) Value(s Special) float64 {
	switch s {
	case PlusInf:
		return sv.PlusInf
	case MinusInf:
		return sv.MinusInf
	case Eps:
		return sv.Eps
	case NA:
		return sv.NA
	case Undf:
		return sv.Undf
	default:
		return 0
	}
}

// IsRegular reports whether v may enter min/max statistics.
func (sv SpecialValues) IsRegular(v float64) bool { return sv.Classify(v) == Regular }

// Sign is a sparse.SignFunc that honors the sentinels: EPS and +INF count as
// positive, -INF as negative, NA and UNDF are not counted.
func (sv SpecialValues) Sign(v float64) int {
	switch sv.Classify(v) {
	case Regular:
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	case PlusInf, Eps:
		return 1
	case MinusInf:
		return -1
	default:
		return 0
	}
}

// Format renders v with its sentinel name when it has one.
func (sv SpecialValues) Format(v float64) string {
	if s := sv.Classify(v); s != Regular {
		return s.String()
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// same compares two sentinels; a NaN sentinel never matches a number.
func same(v, sentinel float64) bool {
	return !math.IsNaN(sentinel) && v == sentinel
}
