// SPDX-License-Identifier: MIT

// Package labeltree - uniting (branch collapsing) and label emission.
//
// Uniting merges one tree into another by label text:
//   - matched children recurse,
//   - unmatched visible children are cloned in,
//   - unmatched invisible children are dropped,
//   - two leaves merge their section sets.
//
// The resulting section set is independent of merge order. Tree shape is not
// when label texts collide across different sub-structures; that case is
// rejected with ErrShapeMismatch.

package labeltree

import (
	"slices"
	"strconv"
)

// Unite merges other into n.
//
// Implementation:
//   - Stage 1: ignore nil, self and invisible sources.
//   - Stage 2: leaf/leaf merges sections; leaf/internal is a shape mismatch.
//   - Stage 3: merge children by text (recurse / clone / drop).
//   - Stage 4: re-sort children by first section and refresh the representative.
//
// Behavior highlights:
//   - other is never modified; n never takes ownership of other's nodes.
//   - Sections of n after the call are Sections(n) ∪ VisibleSections(other).
//
// Errors:
//   - ErrShapeMismatch when a leaf meets an internal node under the same label.
//
// Complexity:
//   - Time O(|n| * W + |other|), W = sibling width.
func (n *Node) Unite(other *Node) error {
	if other == nil || other == n || !other.IsVisible() {
		return nil
	}

	nLeaf, oLeaf := n.IsLeaf(), other.IsLeaf()
	if nLeaf != oLeaf {
		return treeErrorf("Unite("+n.text+", "+other.text+")", ErrShapeMismatch)
	}
	if nLeaf {
		n.sections = normalizeSections(append(n.sections, other.sections...))
		if len(n.sections) > 0 {
			n.sectionIndex = n.sections[0]
		}
		return nil
	}

	for _, oc := range other.children {
		if !oc.IsVisible() {
			continue
		}
		match := n.ChildByText(oc.text)
		if match == nil {
			n.children = append(n.children, oc.clone(n))
			continue
		}
		if err := match.Unite(oc); err != nil {
			return err
		}
	}
	n.sortChildren()
	n.refreshSectionIndex()

	return nil
}

// VisibleBranch pops nodes from the front of items until it finds a visible
// one. The invisible nodes popped on the way are detached from their parent
// and discarded. The visible node is renamed "<typeText> - <dimension>" and
// returned together with the items that were not examined.
//
// A nil node means no item was visible; rest is then empty.
func VisibleBranch(items []*Node, typeText string, dimension int) (branch *Node, rest []*Node) {
	// items is usually a parent's own child slice, which Remove shifts in place.
	items = slices.Clone(items)
	for i, it := range items {
		if it == nil {
			continue
		}
		if !it.IsVisible() {
			if it.parent != nil {
				it.parent.Remove(it)
			}
			continue
		}
		it.text = typeText + " - " + strconv.Itoa(dimension)

		return it, items[i+1:]
	}

	return nil, nil
}

// SectionLabels emits the label path of every visible leaf below n.
//
// Leaves are numbered in tree order starting at startSection; each key maps to
// the texts of the leaf's ancestors from depth 1 down to depth dimension (the
// root text, usually the symbol name, is not part of the path). A parent text
// is therefore repeated for every leaf it spans, which is what a hierarchical
// header shows.
//
// Complexity:
//   - Time O(L * D), L visible leaves, D = dimension.
func (n *Node) SectionLabels(startSection, dimension int) map[int][]string {
	out := make(map[int][]string)
	if dimension <= 0 {
		return out
	}
	base := n.Depth()
	k := startSection
	n.walkLeaves(true, func(leaf *Node) {
		depth := leaf.Depth() - base
		if depth > dimension {
			depth = dimension
		}
		path := make([]string, depth)
		// Walk up from the leaf, skipping levels deeper than dimension.
		p := leaf
		for d := leaf.Depth() - base; d > 0; d-- {
			if d <= dimension {
				path[d-1] = p.text
			}
			p = p.parent
		}
		out[k] = path
		k++
	})

	return out
}

// UnitedSections returns, per visible leaf in tree order, the ascending
// sections that leaf stands for.
func (n *Node) UnitedSections() [][]int {
	leaves := n.VisibleLeaves()
	out := make([][]int, 0, len(leaves))
	for _, leaf := range leaves {
		out = append(out, leaf.LeafSections())
	}

	return out
}
