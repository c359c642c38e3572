// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSymbol indicates two symbols of the same kind share a name.
	ErrDuplicateSymbol = errors.New("model: duplicate symbol name")

	// ErrLabelArity indicates an entry whose label count differs from the symbol dimension.
	ErrLabelArity = errors.New("model: label count does not match dimension")

	// ErrSymbolRange indicates symbol section ranges that overlap, leave gaps or
	// exceed the section count.
	ErrSymbolRange = errors.New("model: invalid symbol section range")

	// ErrSectionRange indicates a coefficient outside the equation × variable grid.
	ErrSectionRange = errors.New("model: section out of range")

	// ErrDuplicateCoefficient indicates two coefficients for the same (row, col).
	ErrDuplicateCoefficient = errors.New("model: duplicate coefficient")

	// ErrTypeCode indicates a symbol type that is not a single known character.
	ErrTypeCode = errors.New("model: invalid type code")

	// ErrEmptyName indicates a symbol without a name.
	ErrEmptyName = errors.New("model: empty symbol name")
)

// modelErrorf tags an error with the operation that detected it.
func modelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
