// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"
	"sort"
)

// Row is one sparse Jacobian row: colIdx[k] is the column of data[k].
// Column indices are strictly ascending.
type Row struct {
	colIdx []int
	data   []float64
}

// NewRow validates and copies the given arrays into a Row.
//
// Errors:
//   - ErrLengthMismatch, ErrUnsorted.
func NewRow(colIdx []int, data []float64) (Row, error) {
	const op = "NewRow"
	if len(colIdx) != len(data) {
		return Row{}, sparseErrorf(op, ErrLengthMismatch)
	}
	for k := 1; k < len(colIdx); k++ {
		if colIdx[k] <= colIdx[k-1] {
			return Row{}, sparseErrorf(op, ErrUnsorted)
		}
	}

	return Row{colIdx: slices.Clone(colIdx), data: slices.Clone(data)}, nil
}

// Entries returns the number of stored coefficients.
func (r Row) Entries() int { return len(r.colIdx) }

// ColIdx returns the column indices. Callers must not modify the slice.
func (r Row) ColIdx() []int { return r.colIdx }

// Data returns the coefficient values. Callers must not modify the slice.
func (r Row) Data() []float64 { return r.data }

// Search returns the position of the first entry whose column is >= col.
// Complexity: O(log n).
func (r Row) Search(col int) int {
	return sort.SearchInts(r.colIdx, col)
}

// Span returns the half-open position range [start, end) of the entries whose
// columns lie in [first, last]. It binary-searches the start and stops at the
// first column past last.
func (r Row) Span(first, last int) (start, end int) {
	start = r.Search(first)
	end = start
	for end < len(r.colIdx) && r.colIdx[end] <= last {
		end++
	}

	return start, end
}

// At returns the coefficient at column col and whether it is stored.
func (r Row) At(col int) (float64, bool) {
	k := r.Search(col)
	if k < len(r.colIdx) && r.colIdx[k] == col {
		return r.data[k], true
	}

	return 0, false
}
