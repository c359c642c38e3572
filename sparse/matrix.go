// SPDX-License-Identifier: MIT

package sparse

// Matrix is a row-major sparse matrix: one Row per equation section.
type Matrix struct {
	rows []Row
	cols int
}

// NewMatrix returns an empty rows×cols matrix (every row without entries).
// Negative sizes are clamped to zero.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Matrix{rows: make([]Row, rows), cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// SetRow installs r as row i.
//
// Errors:
//   - ErrOutOfRange when i is not a row or r references a column >= Cols().
func (m *Matrix) SetRow(i int, r Row) error {
	const op = "Matrix.SetRow"
	if i < 0 || i >= len(m.rows) {
		return sparseErrorf(op, ErrOutOfRange)
	}
	if n := len(r.colIdx); n > 0 && (r.colIdx[0] < 0 || r.colIdx[n-1] >= m.cols) {
		return sparseErrorf(op, ErrOutOfRange)
	}
	m.rows[i] = r

	return nil
}

// Row returns row i, or an empty Row when i is out of range.
func (m *Matrix) Row(i int) Row {
	if i < 0 || i >= len(m.rows) {
		return Row{}
	}

	return m.rows[i]
}

// NonZeros returns the total number of stored coefficients.
func (m *Matrix) NonZeros() int {
	n := 0
	for _, r := range m.rows {
		n += r.Entries()
	}

	return n
}

// ColumnCounts returns the number of stored coefficients per column.
// Complexity: O(nnz).
func (m *Matrix) ColumnCounts() []int {
	out := make([]int, m.cols)
	for _, r := range m.rows {
		for _, c := range r.colIdx {
			out[c]++
		}
	}

	return out
}
