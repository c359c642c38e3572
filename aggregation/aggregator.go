// SPDX-License-Identifier: MIT

package aggregation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modelinspector/labeltree"
	"github.com/katalvlaran/modelinspector/model"
)

// ErrNilSymbol is returned by NewAggregator for a nil symbol.
var ErrNilSymbol = errors.New("aggregation: nil symbol")

// LabelFilter is the user's on/off selection applied before uniting.
//
// A key missing from a map means "on".
type LabelFilter struct {
	Identifiers map[string]bool // symbol name → on
	Labels      map[string]bool // label text → on, shared by all symbols
	Sections    map[int]bool    // absolute section → on; wins over Labels for leaves
	Any         bool            // true: a leaf stays when any label on its path is on
}

func (f LabelFilter) identifierOn(name string) bool { return on(f.Identifiers, name) }

func on[K comparable](m map[K]bool, k K) bool {
	v, ok := m[k]
	return !ok || v
}

// Aggregator works on exactly one symbol. It is not safe for concurrent use.
type Aggregator struct {
	symbol *model.Symbol
	tree   *labeltree.Node // filtered working copy; never restructured
}

// NewAggregator clones the symbol's label tree into a new Aggregator.
//
// Errors:
//   - ErrNilSymbol, label tree build errors.
func NewAggregator(sym *model.Symbol) (*Aggregator, error) {
	if sym == nil {
		return nil, ErrNilSymbol
	}
	tree, err := sym.LabelTree()
	if err != nil {
		return nil, fmt.Errorf("NewAggregator(%s): %w", sym.Name, err)
	}

	return &Aggregator{symbol: sym, tree: tree.Clone()}, nil
}

// Symbol returns the symbol being aggregated.
func (a *Aggregator) Symbol() *model.Symbol { return a.symbol }

// Tree returns the filtered working tree.
func (a *Aggregator) Tree() *labeltree.Node { return a.tree }

// ApplyFilterStates resets the working tree's visibility from f.
//
// Implementation:
//   - Stage 1: the identifier switch turns the whole tree on or off.
//   - Stage 2 (Any): each leaf is on when any label on its path is on (OR).
//   - Stage 2 (!Any): top-down, a branch whose label is off is switched off
//     with everything below it (AND over the path).
//   - Stage 3: per-section overrides set the flag of the leaves they address.
//
// The root text is the symbol name and is not matched against Labels.
func (a *Aggregator) ApplyFilterStates(f LabelFilter) {
	a.tree.SetVisible(f.identifierOn(a.symbol.Name))
	if !a.tree.OwnVisible() {
		return
	}

	if f.Any {
		for _, leaf := range a.tree.Leaves() {
			leaf.SetOwnVisible(anyOn(leaf, a.tree, f.Labels))
		}
	} else {
		applyAll(a.tree, f.Labels, true)
	}

	if len(f.Sections) == 0 {
		return
	}
	for _, leaf := range a.tree.Leaves() {
		if v, ok := f.Sections[leaf.SectionIndex()]; ok {
			leaf.SetOwnVisible(v)
		}
	}
}

// anyOn reports whether any label from leaf up to (excluding) root is on.
// A scalar symbol has no labels and stays on.
func anyOn(leaf, root *labeltree.Node, labels map[string]bool) bool {
	if leaf == root {
		return true
	}
	for n := leaf; n != nil && n != root; n = n.Parent() {
		if on(labels, n.Text()) {
			return true
		}
	}

	return false
}

func applyAll(n *labeltree.Node, labels map[string]bool, isRoot bool) {
	if !isRoot && !on(labels, n.Text()) {
		n.SetVisible(false)
		return
	}
	for _, c := range n.Children() {
		applyAll(c, labels, false)
	}
}

// Aggregate unites the checked dimensions of a copy of the working tree and
// stores the outcome in item. typeText names the united branches; an empty
// typeText falls back to Sum.
//
// Implementation:
//   - Stage 1: clone the working tree so repeated calls see the same input.
//   - Stage 2: for d = 1..Dimension, take the parents at depth d-1.
//     Checked: per parent, pick the representative via VisibleBranch, prune
//     its invisible descendants, unite the remaining siblings into it and
//     make it the only child. Otherwise: drop invisible children and detach
//     parents left without any.
//   - Stage 3: record sections, groups and labels from the final tree.
//
// Behavior highlights:
//   - A dimension without nodes is a no-op.
//   - A parent without any visible child ends the pass early; that parent is
//     detached first so it contributes nothing.
//   - Calling Aggregate twice with the same item settings gives equal results.
//
// Errors:
//   - labeltree.ErrShapeMismatch from uniting branches of different depth.
func (a *Aggregator) Aggregate(item *Item, typeText string) error {
	if typeText == "" {
		typeText = Sum.String()
	}
	tree := a.tree.Clone()

dimensions:
	for d := 1; d <= a.symbol.Dimension; d++ {
		parents := tree.Level(d - 1)
		if len(parents) == 0 {
			continue
		}
		if !item.IsChecked(d) {
			for _, p := range parents {
				if p.IsLeaf() {
					continue
				}
				p.RemoveInvisibleChildren()
				if p.IsLeaf() {
					detach(tree, p)
				}
			}
			continue
		}
		for _, p := range parents {
			if p.IsLeaf() {
				continue
			}
			rep, rest := labeltree.VisibleBranch(p.Children(), typeText, d)
			if rep == nil {
				detach(tree, p)
				break dimensions
			}
			rep.PruneInvisible()
			for _, other := range rest {
				if err := rep.Unite(other); err != nil {
					return fmt.Errorf("Aggregate(%s, %d): %w", a.symbol.Name, d, err)
				}
			}
			p.ReplaceChildren([]*labeltree.Node{rep})
		}
	}

	a.finalize(item, tree)

	return nil
}

// detach removes p from the tree together with ancestors it leaves empty.
// When the root itself ends up empty the whole tree is hidden.
func detach(root, p *labeltree.Node) {
	for p != root && p.Parent() != nil {
		parent := p.Parent()
		parent.Remove(p)
		if parent.ChildCount() > 0 {
			return
		}
		p = parent
	}
	root.SetVisible(false)
}

func (a *Aggregator) finalize(item *Item, tree *labeltree.Node) {
	item.tree = tree
	item.visibleSections = tree.VisibleSectionsSorted()
	item.visibleSectionCount = tree.SectionExtent()
	item.unitedSections = tree.UnitedSections()
	item.labels = tree.SectionLabels(a.symbol.FirstSection, a.symbol.Dimension)
	item.domainLabels = make(map[int][]string, a.symbol.Dimension)
	for d := 1; d <= a.symbol.Dimension; d++ {
		var texts []string
		seen := make(map[string]bool)
		for _, n := range tree.Level(d) {
			if !n.IsVisible() || seen[n.Text()] {
				continue
			}
			seen[n.Text()] = true
			texts = append(texts, n.Text())
		}
		item.domainLabels[d] = texts
	}
	item.aggregated = true
}

// AggregateSymbol runs a full pass for one symbol: build the aggregator,
// apply f, aggregate into item with t's name.
func AggregateSymbol(sym *model.Symbol, item *Item, f LabelFilter, t Type) error {
	agg, err := NewAggregator(sym)
	if err != nil {
		return err
	}
	agg.ApplyFilterStates(f)

	return agg.Aggregate(item, t.String())
}
