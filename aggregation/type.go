// SPDX-License-Identifier: MIT

package aggregation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownType is returned by ParseType for names it does not know.
var ErrUnknownType = errors.New("aggregation: unknown type")

// Type is the reduction applied to a united group.
type Type uint8

const (
	None Type = iota
	Count
	Mean
	Median
	Maximum
	Minimum
	Sum
)

var typeNames = [...]string{"None", "Count", "Mean", "Median", "Maximum", "Minimum", "Sum"}

// String returns the display name, which is also the text united branches carry.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// ParseType maps a case-insensitive name ("sum", "Max" and "min" included) to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "count":
		return Count, nil
	case "mean", "avg", "average":
		return Mean, nil
	case "median":
		return Median, nil
	case "maximum", "max":
		return Maximum, nil
	case "minimum", "min":
		return Minimum, nil
	case "sum":
		return Sum, nil
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// CheckState is the per-dimension selection of an Item.
type CheckState uint8

const (
	// Unchecked keeps the dimension's branches apart.
	Unchecked CheckState = iota
	// PartiallyChecked is shown for mixed selections and behaves like Unchecked.
	PartiallyChecked
	// Checked unites the dimension's branches.
	Checked
)
