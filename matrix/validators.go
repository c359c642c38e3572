// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Return plain sentinel errors wrapped with the validator tag so call sites
//    can match with errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the buffer reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBlock ensures the top-left rows×cols block lies inside m.
func ValidateBlock(m *Dense, rows, cols int) error {
	if rows < 0 || cols < 0 || rows > m.Rows() || cols > m.Cols() {
		return validatorErrorf("ValidateBlock", ErrBadShape)
	}

	return nil
}
