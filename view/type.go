// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownType is returned by ParseType.
var ErrUnknownType = errors.New("view: unknown type")

// Type selects the statistic a view shows.
type Type uint8

const (
	Unknown Type = iota
	Scaling
	Overview
	Count
	Average
	Symbols
	Postopt
)

var typeNames = [...]string{"unknown", "scaling", "overview", "count", "average", "symbols", "postopt"}

// String returns the lower-case name used on the command line and in logs.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return "type(" + strconv.Itoa(int(t)) + ")"
}

// ParseType is the inverse of String (case-insensitive).
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if i > 0 && n == s {
			return Type(i), nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Types lists the concrete view types in display order.
func Types() []Type {
	return []Type{Scaling, Overview, Count, Average, Symbols, Postopt}
}

// Orientation picks a header axis.
type Orientation uint8

const (
	// Horizontal is the column header (variables).
	Horizontal Orientation = iota
	// Vertical is the row header (equations).
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}

	return "horizontal"
}
