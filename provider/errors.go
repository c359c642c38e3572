// SPDX-License-Identifier: MIT

package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInstance is returned by NewHandler for a nil model instance.
	ErrNilInstance = errors.New("provider: nil model instance")

	// ErrSymbolIndex indicates a view that selects a symbol the model does not have.
	ErrSymbolIndex = errors.New("provider: symbol index out of range")
)

// providerErrorf tags an error with the operation and view that detected it.
func providerErrorf(op string, viewID int, err error) error {
	return fmt.Errorf("%s(view %d): %w", op, viewID, err)
}
