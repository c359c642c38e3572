// SPDX-License-Identifier: MIT

package labeltree

import (
	"slices"
)

// Build groups the section labels of one symbol into a label tree.
//
// Implementation:
//   - Stage 1: validate dimension and label arity.
//   - Stage 2: walk sections in ascending order; for each section descend from
//     the root, creating one child per distinct label text at each level.
//   - Stage 3: attach the section to the leaf at depth == dimension.
//
// Behavior highlights:
//   - Siblings appear in order of their first section, i.e. in order of first
//     appearance in the symbol.
//   - A scalar symbol (dimension 0) yields a single leaf root holding all sections.
//
// Inputs:
//   - name: root text (the symbol name).
//   - labels: absolute section -> per-dimension labels (len == dimension).
//   - dimension: number of index positions of the symbol.
//
// Errors:
//   - ErrNegativeDimension, ErrLabelArity.
//
// Complexity:
//   - Time O(S * D * W) where W is the sibling width scanned per level, Space O(S * D).
func Build(name string, labels map[int][]string, dimension int) (*Node, error) {
	const op = "Build"
	if dimension < 0 {
		return nil, treeErrorf(op, ErrNegativeDimension)
	}
	sections := make([]int, 0, len(labels))
	for s, l := range labels {
		if len(l) != dimension {
			return nil, treeErrorf(op, ErrLabelArity)
		}
		sections = append(sections, s)
	}
	slices.Sort(sections)

	// Scalar symbol: the root is the only leaf.
	if dimension == 0 {
		return NewLeaf(name, sections...), nil
	}

	root := New(name, NoSection)
	// lastChild short-cuts the sibling scan for runs of equal labels.
	lastChild := make(map[*Node]*Node)
	for _, s := range sections {
		parent := root
		path := labels[s]
		for d := 0; d < dimension; d++ {
			text := path[d]
			child := lastChild[parent]
			if child == nil || child.text != text {
				child = parent.ChildByText(text)
			}
			if child == nil {
				if d == dimension-1 {
					child = NewLeaf(text)
				} else {
					child = New(text, s)
				}
				child.parent = parent
				parent.children = append(parent.children, child)
			}
			lastChild[parent] = child
			parent = child
		}
		parent.sections = append(parent.sections, s)
	}
	root.fixup()

	return root, nil
}

// fixup normalizes leaf sections and representative indices bottom-up.
func (n *Node) fixup() {
	if len(n.children) == 0 {
		n.sections = normalizeSections(n.sections)
		if len(n.sections) > 0 {
			n.sectionIndex = n.sections[0]
		}
		return
	}
	for _, c := range n.children {
		c.fixup()
	}
	n.refreshSectionIndex()
}
