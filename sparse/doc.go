// SPDX-License-Identifier: MIT

// Package sparse holds the row-major sparse Jacobian of a model instance and
// the coefficient-count matrix derived from it in one pass.
//
//   - Row:              parallel column-index / value arrays, ascending by column.
//   - Matrix:           one Row per equation (the DataMatrix of a session).
//   - CoefficientCount: positive/negative nonzero counts per equation block ×
//     variable block, with RHS and total rows/columns.
//
// Sortedness of Row column indices is validated on construction; providers rely
// on it for binary-searched, early-exit scans of a column range.
package sparse
