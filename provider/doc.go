// SPDX-License-Identifier: MIT

// Package provider computes and caches the statistical views of a model.
//
// A Handler owns the sparse Jacobian of one model instance and the
// CoefficientCount derived from it. For each view it builds one Provider,
// stores it under the view id and answers point queries (Data, HeaderData,
// RowCount, ...) from that cache. Provider is a closed family: Scaling,
// Overview, Count, Average, Symbols, Aggregated and Postopt; each owns its
// result buffer, so cloning a view is a deep copy.
//
// Query methods never fail: unknown view ids and out-of-range indices answer
// with empty values. Errors are reserved for loading.
//
// Loader runs many loads in the background with cooperative cancellation.
package provider
