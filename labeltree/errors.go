// SPDX-License-Identifier: MIT

package labeltree

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned by Unite when one side of a label match is a
	// leaf and the other is not. Uniting trees of different depth has no
	// meaningful result, so it is rejected instead of guessed at.
	ErrShapeMismatch = errors.New("labeltree: mismatched branch shape")

	// ErrLabelArity is returned by Build when a section carries a label list
	// whose length differs from the symbol dimension.
	ErrLabelArity = errors.New("labeltree: label count does not match dimension")

	// ErrNegativeDimension is returned by Build for a dimension below zero.
	ErrNegativeDimension = errors.New("labeltree: negative dimension")
)

// treeErrorf tags an error with the operation that detected it.
func treeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
