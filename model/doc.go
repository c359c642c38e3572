// SPDX-License-Identifier: MIT

// Package model describes the solved model instance the inspector reads.
//
// An instance is a sparse Jacobian (one row per equation section, one column
// per variable section) plus the symbol metadata that groups sections into
// named blocks:
//
//   - Symbol: a named equation or variable block over a contiguous section
//     range, with per-section index labels and a lazily built label tree.
//   - Instance: the read-only collaborator interface the statistics layer
//     consumes (rows, right-hand side, bounds, type codes, solution attributes).
//   - Memory / Builder: an in-memory Instance assembled from symbol specs and
//     coefficients, also decodable from a YAML fixture.
//   - SpecialValues / Classify: mapping of solver sentinels (±INF, EPS, NA,
//     UNDF) so they never enter min/max statistics.
//   - MarginalPolicy: how marginals are displayed when basis information exists.
package model
