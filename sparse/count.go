// SPDX-License-Identifier: MIT

// Package sparse - CoefficientCount.
//
// Layout for E equation blocks and V variable blocks, (2E+2) × (V+2):
//
//	row 2e     positive entries of equation block e
//	row 2e+1   negative entries of equation block e
//	row 2E     positive column totals
//	row 2E+1   negative column totals
//	col v      variable block v
//	col V      right-hand side
//	col V+1    row total (coefficients only, RHS excluded)
//
// The matrix is sized once and overwritten in place by Recount.

package sparse

// SignFunc classifies a coefficient: +1 positive, -1 negative, 0 not counted.
type SignFunc func(v float64) int

// Sign is the plain SignFunc: zero and NaN are not counted.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// CoefficientCount is the dense sign-bucketed nonzero count matrix.
type CoefficientCount struct {
	equations int   // E
	variables int   // V
	cols      int   // V+2
	data      []int // (2E+2)*(V+2), row-major
}

// NewCoefficientCount allocates a zeroed count matrix for the given block counts.
// Negative counts are clamped to zero.
func NewCoefficientCount(equationBlocks, variableBlocks int) *CoefficientCount {
	if equationBlocks < 0 {
		equationBlocks = 0
	}
	if variableBlocks < 0 {
		variableBlocks = 0
	}
	cols := variableBlocks + 2

	return &CoefficientCount{
		equations: equationBlocks,
		variables: variableBlocks,
		cols:      cols,
		data:      make([]int, (2*equationBlocks+2)*cols),
	}
}

// EquationBlocks returns E.
func (c *CoefficientCount) EquationBlocks() int { return c.equations }

// VariableBlocks returns V.
func (c *CoefficientCount) VariableBlocks() int { return c.variables }

// Rows returns 2E+2.
func (c *CoefficientCount) Rows() int { return 2*c.equations + 2 }

// Cols returns V+2.
func (c *CoefficientCount) Cols() int { return c.cols }

// At returns the raw cell (row, col), 0 when out of range.
func (c *CoefficientCount) At(row, col int) int {
	if row < 0 || row >= c.Rows() || col < 0 || col >= c.cols {
		return 0
	}

	return c.data[row*c.cols+col]
}

// Positive returns the positive count of equation block e against column col
// (a variable block, RHSColumn or TotalColumn). e == EquationBlocks() addresses
// the totals row.
func (c *CoefficientCount) Positive(e, col int) int { return c.At(2*e, col) }

// Negative is Positive for negative entries.
func (c *CoefficientCount) Negative(e, col int) int { return c.At(2*e+1, col) }

// NonZeros returns Positive + Negative.
func (c *CoefficientCount) NonZeros(e, col int) int { return c.Positive(e, col) + c.Negative(e, col) }

// RHSColumn returns the column index of the right-hand side (V).
func (c *CoefficientCount) RHSColumn() int { return c.variables }

// TotalColumn returns the column index of the row totals (V+1).
func (c *CoefficientCount) TotalColumn() int { return c.variables + 1 }

// TotalBlock returns the pseudo equation block holding column totals (E).
func (c *CoefficientCount) TotalBlock() int { return c.equations }

// Clone returns an independent copy.
func (c *CoefficientCount) Clone() *CoefficientCount {
	cp := *c
	cp.data = make([]int, len(c.data))
	copy(cp.data, c.data)

	return &cp
}

// Recount overwrites the counts from one pass over m.
//
// Implementation:
//   - Stage 1: validate the section→block lookups against m.
//   - Stage 2: zero the buffer (idempotent recomputation).
//   - Stage 3: for each row, bucket every coefficient by sign into its block
//     cell, the row total and the column total; then bucket the RHS.
//
// Inputs:
//   - m: sparse Jacobian.
//   - rowBlock: equation section → equation block (-1 skips the row), len == m.Rows().
//   - colBlock: variable section → variable block (-1 skips the column), len == m.Cols().
//   - rhs: right-hand side per equation section; nil or short slices count as zero.
//   - sign: coefficient classifier; nil means Sign.
//
// Errors:
//   - ErrBlockIndex when a lookup length or block number does not fit.
//
// Complexity:
//   - Time O(nnz + rows), Space O(1) beyond the buffer.
func (c *CoefficientCount) Recount(m *Matrix, rowBlock, colBlock []int, rhs []float64, sign SignFunc) error {
	const op = "CoefficientCount.Recount"
	if len(rowBlock) != m.Rows() || len(colBlock) != m.Cols() {
		return sparseErrorf(op, ErrBlockIndex)
	}
	for _, b := range rowBlock {
		if b >= c.equations {
			return sparseErrorf(op, ErrBlockIndex)
		}
	}
	for _, b := range colBlock {
		if b >= c.variables {
			return sparseErrorf(op, ErrBlockIndex)
		}
	}
	if sign == nil {
		sign = Sign
	}
	clear(c.data)

	totalRow := 2 * c.equations
	rhsCol, totCol := c.RHSColumn(), c.TotalColumn()
	for i, e := range rowBlock {
		if e < 0 {
			continue
		}
		r := m.rows[i]
		for k, col := range r.colIdx {
			v := colBlock[col]
			if v < 0 {
				continue
			}
			switch sign(r.data[k]) {
			case 1:
				c.inc(2*e, v)
				c.inc(2*e, totCol)
				c.inc(totalRow, v)
				c.inc(totalRow, totCol)
			case -1:
				c.inc(2*e+1, v)
				c.inc(2*e+1, totCol)
				c.inc(totalRow+1, v)
				c.inc(totalRow+1, totCol)
			}
		}
		if i >= len(rhs) {
			continue
		}
		switch sign(rhs[i]) {
		case 1:
			c.inc(2*e, rhsCol)
			c.inc(totalRow, rhsCol)
		case -1:
			c.inc(2*e+1, rhsCol)
			c.inc(totalRow+1, rhsCol)
		}
	}

	return nil
}

func (c *CoefficientCount) inc(row, col int) { c.data[row*c.cols+col]++ }
