// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when column-index and value arrays differ in length.
	ErrLengthMismatch = errors.New("sparse: column and value arrays differ in length")

	// ErrUnsorted is returned when column indices are not strictly ascending.
	ErrUnsorted = errors.New("sparse: column indices not strictly ascending")

	// ErrOutOfRange is returned for a row or column index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrBlockIndex is returned when a section→block lookup does not cover the matrix.
	ErrBlockIndex = errors.New("sparse: block index does not cover matrix")
)

func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
