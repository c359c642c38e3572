// SPDX-License-Identifier: MIT

// Package labeltree - Node storage, structure and visibility.
//
// Purpose:
//   - Hold one level of a symbol's index hierarchy (text + sections + children).
//   - Answer section/visibility queries used by the aggregation layer.
//
// Invariants:
//   - Sections() of a node is the union of all descendant leaf sections.
//   - A node is visible iff it is a leaf with its own flag set, or it has at
//     least one visible child.
//   - sectionIndex of an internal node is the smallest section below it.
//
// Complexity quicksheet:
//   - IsVisible/SectionExtent/Sections: O(size of subtree).
//   - Clone: O(size of subtree).

package labeltree

import (
	"slices"
)

// NoSection marks a node without a representative section.
const NoSection = -1

// Node is one element of a label tree.
type Node struct {
	text         string
	sectionIndex int     // representative absolute section, NoSection if unset
	sections     []int   // leaf sections, ascending and unique; unused on internal nodes
	visible      bool    // own flag; effective visibility of internal nodes is derived
	children     []*Node // owned, ordered by first section
	parent       *Node   // non-owning back reference
}

// New returns a detached internal node with the given text and representative section.
// Pass NoSection when the node has no representative section yet.
func New(text string, sectionIndex int) *Node {
	return &Node{text: text, sectionIndex: sectionIndex, visible: true}
}

// NewLeaf returns a detached leaf carrying the given sections.
// The representative section is the smallest one (NoSection for none).
func NewLeaf(text string, sections ...int) *Node {
	n := &Node{text: text, sectionIndex: NoSection, visible: true}
	n.sections = normalizeSections(slices.Clone(sections))
	if len(n.sections) > 0 {
		n.sectionIndex = n.sections[0]
	}

	return n
}

// Text returns the label text of the node.
func (n *Node) Text() string { return n.text }

// SetText replaces the label text of the node.
func (n *Node) SetText(text string) { n.text = text }

// SectionIndex returns the representative absolute section or NoSection.
func (n *Node) SectionIndex() int { return n.sectionIndex }

// Parent returns the owning node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child list. The slice is owned by the node;
// callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Depth returns the distance to the root (root has depth 0).
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// Append takes ownership of child and adds it as the last child.
// A child that still belongs to another parent is detached from it first.
func (n *Node) Append(child *Node) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	n.refreshSectionIndex()
}

// Remove drops child from the node. It returns false when child is not a direct child.
func (n *Node) Remove(child *Node) bool {
	if !n.remove(child) {
		return false
	}
	n.refreshSectionIndex()

	return true
}

func (n *Node) remove(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil

	return true
}

// ReplaceChildren drops every current child and takes ownership of children.
func (n *Node) ReplaceChildren(children []*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = make([]*Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil && c.parent != n {
			c.parent.remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	n.refreshSectionIndex()
}

// RemoveInvisibleChildren drops all direct children that are not visible and
// returns how many were dropped.
func (n *Node) RemoveInvisibleChildren() int {
	kept := n.children[:0]
	dropped := 0
	for _, c := range n.children {
		if c.IsVisible() {
			kept = append(kept, c)
			continue
		}
		c.parent = nil
		dropped++
	}
	// Clear the tail so dropped nodes are not pinned by the backing array.
	clear(n.children[len(kept):])
	n.children = kept
	if dropped > 0 {
		n.refreshSectionIndex()
	}

	return dropped
}

// PruneInvisible removes every invisible subtree below n and returns the
// number of detached subtree roots. Kept internal nodes always retain at
// least one visible child.
func (n *Node) PruneInvisible() int {
	dropped := n.RemoveInvisibleChildren()
	for _, c := range n.children {
		dropped += c.PruneInvisible()
	}

	return dropped
}

// ChildByText returns the first direct child with the given text, or nil.
func (n *Node) ChildByText(text string) *Node {
	for _, c := range n.children {
		if c.text == text {
			return c
		}
	}

	return nil
}

// Level returns the nodes at the given depth below n, in tree order.
// Level(0) is n itself; an out-of-range depth yields an empty slice.
func (n *Node) Level(depth int) []*Node {
	if depth < 0 {
		return nil
	}
	current := []*Node{n}
	for d := 0; d < depth; d++ {
		var next []*Node
		for _, c := range current {
			next = append(next, c.children...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}

	return current
}

// Clone returns a deep copy of the subtree rooted at n. The copy is detached
// (nil parent) and shares no node with n.
func (n *Node) Clone() *Node {
	return n.clone(nil)
}

func (n *Node) clone(parent *Node) *Node {
	c := &Node{
		text:         n.text,
		sectionIndex: n.sectionIndex,
		visible:      n.visible,
		parent:       parent,
	}
	if len(n.sections) > 0 {
		c.sections = slices.Clone(n.sections)
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, 0, len(n.children))
		for _, child := range n.children {
			c.children = append(c.children, child.clone(c))
		}
	}

	return c
}

// ---------- visibility ----------

// SetVisible forces the visibility flag of n and of every node below it.
func (n *Node) SetVisible(visible bool) {
	n.visible = visible
	for _, c := range n.children {
		c.SetVisible(visible)
	}
}

// SetOwnVisible sets the flag of n only. For internal nodes the flag is kept
// but effective visibility still derives from the children.
func (n *Node) SetOwnVisible(visible bool) { n.visible = visible }

// OwnVisible returns the raw flag of n.
func (n *Node) OwnVisible() bool { return n.visible }

// IsVisible reports the effective visibility: a leaf is visible when its flag is
// set, an internal node when at least one child is visible.
func (n *Node) IsVisible() bool {
	if len(n.children) == 0 {
		return n.visible
	}
	for _, c := range n.children {
		if c.IsVisible() {
			return true
		}
	}

	return false
}

// ---------- sections ----------

// Sections returns the ascending union of all descendant leaf sections,
// regardless of visibility.
func (n *Node) Sections() []int {
	if len(n.children) == 0 {
		return slices.Clone(n.sections)
	}
	var out []int
	n.walkLeaves(false, func(leaf *Node) {
		out = append(out, leaf.sections...)
	})

	return normalizeSections(out)
}

// VisibleSections returns the sections of all leaves reachable through visible
// children, in tree order. A leaf contributes its sections iff it is visible.
func (n *Node) VisibleSections() []int {
	var out []int
	n.walkLeaves(true, func(leaf *Node) {
		out = append(out, leaf.sections...)
	})

	return out
}

// VisibleSectionsSorted is VisibleSections in ascending order without duplicates.
func (n *Node) VisibleSectionsSorted() []int {
	return normalizeSections(n.VisibleSections())
}

// SectionExtent returns the number of visible leaves below (or at) n.
// It counts leaves, not raw sections: a united leaf holding many sections
// counts once.
func (n *Node) SectionExtent() int {
	count := 0
	n.walkLeaves(true, func(*Node) { count++ })

	return count
}

// LeafSections returns the sections carried by n when it is a leaf, nil otherwise.
func (n *Node) LeafSections() []int {
	if len(n.children) > 0 {
		return nil
	}

	return slices.Clone(n.sections)
}

// VisibleLeaves returns the visible leaves below n in tree order.
func (n *Node) VisibleLeaves() []*Node {
	var out []*Node
	n.walkLeaves(true, func(leaf *Node) { out = append(out, leaf) })

	return out
}

// Leaves returns every leaf below n in tree order, visible or not.
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.walkLeaves(false, func(leaf *Node) { out = append(out, leaf) })

	return out
}

// walkLeaves visits leaves depth-first. With onlyVisible, invisible branches are skipped.
func (n *Node) walkLeaves(onlyVisible bool, visit func(*Node)) {
	if len(n.children) == 0 {
		if !onlyVisible || n.visible {
			visit(n)
		}
		return
	}
	for _, c := range n.children {
		if onlyVisible && !c.IsVisible() {
			continue
		}
		c.walkLeaves(onlyVisible, visit)
	}
}

// firstSection returns the smallest section below n, or NoSection.
func (n *Node) firstSection() int {
	if len(n.children) == 0 {
		if len(n.sections) == 0 {
			return NoSection
		}
		return n.sections[0]
	}
	first := NoSection
	for _, c := range n.children {
		s := c.firstSection()
		if s == NoSection {
			continue
		}
		if first == NoSection || s < first {
			first = s
		}
	}

	return first
}

// refreshSectionIndex recomputes the representative section of internal nodes.
func (n *Node) refreshSectionIndex() {
	if len(n.children) == 0 {
		return
	}
	n.sectionIndex = n.firstSection()
}

// sortChildren orders children by their first section; nodes without sections go last.
func (n *Node) sortChildren() {
	slices.SortStableFunc(n.children, func(a, b *Node) int {
		fa, fb := a.firstSection(), b.firstSection()
		switch {
		case fa == fb:
			return 0
		case fa == NoSection:
			return 1
		case fb == NoSection:
			return -1
		case fa < fb:
			return -1
		default:
			return 1
		}
	})
}

// normalizeSections sorts and de-duplicates a section list in place.
func normalizeSections(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	slices.Sort(s)

	return slices.Compact(s)
}
