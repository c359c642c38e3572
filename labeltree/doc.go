// SPDX-License-Identifier: MIT

// Package labeltree groups the multi-dimensional index entries of one model
// symbol into a hierarchy, one tree level per index dimension.
//
// A Node owns its children (an ordered slice) and keeps a non-owning pointer to
// its parent. Leaves carry the absolute matrix sections (equation rows or
// variable columns) addressed by their label path; internal nodes derive their
// section set from the leaves below them.
//
// The package supplies the primitives the aggregation layer is built from:
//
//   - Build:          group a symbol's section labels by shared prefixes.
//   - Clone:          deep copy, so a working tree can be mutated freely.
//   - SetVisible:     recursive visibility on/off for whole subtrees.
//   - Unite:          merge another tree into this one, matching children by label text.
//   - VisibleBranch:  pick the representative branch of a sibling list.
//   - SectionLabels:  emit the per-level label texts of every visible leaf.
//
// Determinism:
//   - Children are kept in ascending order of their first section after every
//     structural change, so label emission and leaf enumeration are stable.
//
// Concurrency:
//   - Nodes are not safe for concurrent mutation. Clone a tree before handing it
//     to another goroutine.
package labeltree
