// SPDX-License-Identifier: MIT

package labeltree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/labeltree"
)

// MustBuild builds a label tree or fails the test.
func MustBuild(t *testing.T, name string, labels map[int][]string, dim int) *labeltree.Node {
	t.Helper()
	root, err := labeltree.Build(name, labels, dim)
	require.NoError(t, err)
	require.NotNil(t, root)

	return root
}

// scenarioLabels is a two-dimensional symbol over sections 0..2:
//
//	0: a.x   1: a.y   2: b.x
func scenarioLabels() map[int][]string {
	return map[int][]string{
		0: {"a", "x"},
		1: {"a", "y"},
		2: {"b", "x"},
	}
}

// texts returns the texts of nodes in order.
func texts(nodes []*labeltree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text())
	}

	return out
}

// collect returns every node of the subtree in pre-order.
func collect(n *labeltree.Node) []*labeltree.Node {
	out := []*labeltree.Node{n}
	for _, c := range n.Children() {
		out = append(out, collect(c)...)
	}

	return out
}
