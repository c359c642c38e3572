// SPDX-License-Identifier: MIT

package provider

import (
	"strconv"

	"github.com/katalvlaran/modelinspector/model"
)

// Kind tells what a Value holds.
type Kind uint8

const (
	// Invalid is an empty cell.
	Invalid Kind = iota
	// Number is a numeric cell; Special classifies it against the solver sentinels.
	Number
	// Char is a one-character code (sign or type).
	Char
)

// Value is one cell of a view.
type Value struct {
	Kind    Kind
	Num     float64
	Char    byte
	Special model.Special
}

// NumberValue wraps v and classifies it with sv.
func NumberValue(v float64, sv model.SpecialValues) Value {
	return Value{Kind: Number, Num: v, Special: sv.Classify(v)}
}

// CharValue wraps a sign or type code.
func CharValue(c byte) Value { return Value{Kind: Char, Char: c} }

// Valid reports whether the cell holds anything.
func (v Value) Valid() bool { return v.Kind != Invalid }

// String renders the cell the way a table shows it.
func (v Value) String() string {
	switch v.Kind {
	case Number:
		if v.Special != model.Regular {
			return v.Special.String()
		}
		return strconv.FormatFloat(v.Num, 'g', 6, 64)
	case Char:
		if v.Char == 0 {
			return ""
		}
		return string(rune(v.Char))
	default:
		return ""
	}
}
