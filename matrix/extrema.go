// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Value-range scans over a block of a buffer (the "data range" a value
//     filter is seeded from).
//
// Determinism & Performance:
//   - Fixed i→j traversal over the flat buffer.

package matrix

import "math"

const opExtrema = "Extrema"

// Extrema returns the smallest and largest value in the top-left rows×cols
// block of m, skipping values for which skip returns true (nil skips nothing).
//
// Implementation:
//   - Stage 1: validate m and the block.
//   - Stage 2: scan the block row by row.
//
// Returns:
//   - lo, hi: range of the accepted values.
//   - ok: false when no value was accepted (lo=hi=0).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func Extrema(m *Dense, rows, cols int, skip func(v float64) bool) (lo, hi float64, ok bool, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, false, matrixErrorf(opExtrema, err)
	}
	if err = ValidateBlock(m, rows, cols); err != nil {
		return 0, 0, false, matrixErrorf(opExtrema, err)
	}

	lo, hi = math.MaxFloat64, -math.MaxFloat64
	visit := func(v float64) {
		if skip != nil && skip(v) {
			return
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var i, j int
	for i = 0; i < rows; i++ {
		base := i * m.c
		for j = 0; j < cols; j++ {
			visit(m.data[base+j])
		}
	}
	if !ok {
		return 0, 0, false, nil
	}

	return lo, hi, true, nil
}
