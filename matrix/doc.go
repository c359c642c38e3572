// SPDX-License-Identifier: MIT

// Package matrix provides the dense result buffers the view providers write
// into: a row-major, bounds-checked Dense with value-semantic Clone.
//
// The package provides:
//
//   - Dense: flat []float64 storage with Set returning errors instead of
//     panicking, plus Fill/Apply for seeding and normalizing a whole buffer.
//   - Functional numeric policy options (reject NaN/±Inf on Set by default).
//   - Validators shared by the statistics helpers.
//   - Extrema helpers that scan a block of a buffer for its value range.
//
// Zero-area shapes (0×N, N×0) are legal: an empty view is a valid result.
package matrix
