// SPDX-License-Identifier: MIT

// Package aggregation collapses label-tree branches of one symbol.
//
// An Aggregator owns a filtered working copy of a symbol's label tree. For
// every dimension the caller marks Checked, all sibling branches at that level
// are united into one representative branch named "<Type> - <dimension>";
// unchecked dimensions only lose their invisible branches. The outcome is
// recorded in an Item: the groups of sections that now form one logical row
// or column, the visible sections, and the labels to show for each group.
//
// Reduce turns the values that fall into one group into a single number.
package aggregation
