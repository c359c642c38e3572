// SPDX-License-Identifier: MIT

package aggregation

import (
	"maps"
	"slices"

	"github.com/katalvlaran/modelinspector/labeltree"
)

// Item is the per-symbol input and result of one aggregation pass.
//
// Text, SymbolIndex and CheckStates are set by the caller. The remaining
// state is written by Aggregator.Aggregate and is read-only afterwards.
type Item struct {
	Text        string
	SymbolIndex int
	CheckStates map[int]CheckState // dimension (1-based) → state

	tree                *labeltree.Node
	visibleSections     []int
	visibleSectionCount int
	unitedSections      [][]int
	labels              map[int][]string
	domainLabels        map[int][]string
	aggregated          bool
}

// NewItem returns an item for the symbol with the given dimensions checked.
func NewItem(text string, symbolIndex int, checked ...int) *Item {
	it := &Item{Text: text, SymbolIndex: symbolIndex, CheckStates: make(map[int]CheckState, len(checked))}
	for _, d := range checked {
		it.CheckStates[d] = Checked
	}

	return it
}

// IsChecked reports whether dimension d is to be united.
func (it *Item) IsChecked(d int) bool { return it.CheckStates[d] == Checked }

// Aggregated reports whether a pass has filled the results.
func (it *Item) Aggregated() bool { return it.aggregated }

// LabelTree returns the aggregated tree. It is shared with the caller and
// must not be modified.
func (it *Item) LabelTree() *labeltree.Node { return it.tree }

// VisibleSections returns the ascending visible sections.
func (it *Item) VisibleSections() []int { return it.visibleSections }

// VisibleSectionCount is the number of logical rows or columns after uniting.
func (it *Item) VisibleSectionCount() int { return it.visibleSectionCount }

// UnitedSections returns one ascending section group per logical row or column.
func (it *Item) UnitedSections() [][]int { return it.unitedSections }

// Labels maps FirstSection+k to the label path of logical index k.
func (it *Item) Labels() map[int][]string { return it.labels }

// DomainLabels maps dimension d to the distinct visible labels at that level.
func (it *Item) DomainLabels() map[int][]string { return it.domainLabels }

// Clone returns a deep copy; the label tree is cloned too.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := &Item{
		Text:                it.Text,
		SymbolIndex:         it.SymbolIndex,
		CheckStates:         maps.Clone(it.CheckStates),
		visibleSections:     slices.Clone(it.visibleSections),
		visibleSectionCount: it.visibleSectionCount,
		labels:              cloneLabels(it.labels),
		domainLabels:        cloneLabels(it.domainLabels),
		aggregated:          it.aggregated,
	}
	if it.tree != nil {
		cp.tree = it.tree.Clone()
	}
	if it.unitedSections != nil {
		cp.unitedSections = make([][]int, len(it.unitedSections))
		for i, g := range it.unitedSections {
			cp.unitedSections[i] = slices.Clone(g)
		}
	}

	return cp
}

func cloneLabels(m map[int][]string) map[int][]string {
	if m == nil {
		return nil
	}
	out := make(map[int][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}

	return out
}
