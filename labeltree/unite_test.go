// SPDX-License-Identifier: MIT

package labeltree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/labeltree"
)

func TestUnite_DisjointUnionAndMergeByText(t *testing.T) {
	t.Parallel()

	a := MustBuild(t, "e", map[int][]string{0: {"a", "x"}, 1: {"b", "y"}}, 2)
	b := MustBuild(t, "e", map[int][]string{2: {"a", "z"}, 3: {"c", "y"}}, 2)
	before := a.Sections()

	require.NoError(t, a.Unite(b))

	require.Equal(t, []int{0, 1, 2, 3}, a.Sections())
	require.Subset(t, a.Sections(), before)
	require.Equal(t, []string{"a", "b", "c"}, texts(a.Children()))
	require.Equal(t, []string{"x", "z"}, texts(a.Children()[0].Children()))

	// Source is untouched.
	require.Equal(t, []int{2, 3}, b.Sections())
	require.Equal(t, 2, b.ChildCount())
}

func TestUnite_SameLeafTextMergesSections(t *testing.T) {
	t.Parallel()

	a := MustBuild(t, "e", map[int][]string{0: {"x"}}, 1)
	b := MustBuild(t, "e", map[int][]string{5: {"x"}}, 1)
	require.NoError(t, a.Unite(b))

	require.Equal(t, 1, a.ChildCount())
	require.Equal(t, []int{0, 5}, a.Children()[0].LeafSections())
}

func TestUnite_DropsInvisible(t *testing.T) {
	t.Parallel()

	a := MustBuild(t, "e", map[int][]string{0: {"x"}}, 1)
	b := MustBuild(t, "e", map[int][]string{1: {"y"}, 2: {"z"}}, 1)
	b.Children()[0].SetOwnVisible(false)

	require.NoError(t, a.Unite(b))
	require.Equal(t, []string{"x", "z"}, texts(a.Children()))
	require.Equal(t, []int{0, 2}, a.Sections())

	hidden := MustBuild(t, "e", map[int][]string{9: {"q"}}, 1)
	hidden.SetVisible(false)
	require.NoError(t, a.Unite(hidden))
	require.Equal(t, []int{0, 2}, a.Sections())
}

func TestUnite_OrderIndependentSections(t *testing.T) {
	t.Parallel()

	mk := func() (*labeltree.Node, *labeltree.Node, *labeltree.Node) {
		return MustBuild(t, "e", map[int][]string{0: {"a", "x"}}, 2),
			MustBuild(t, "e", map[int][]string{1: {"b", "x"}}, 2),
			MustBuild(t, "e", map[int][]string{2: {"a", "y"}}, 2)
	}
	x1, y1, z1 := mk()
	require.NoError(t, x1.Unite(y1))
	require.NoError(t, x1.Unite(z1))

	x2, y2, z2 := mk()
	require.NoError(t, z2.Unite(y2))
	require.NoError(t, z2.Unite(x2))

	require.Equal(t, x1.Sections(), z2.Sections())
}

func TestUnite_ShapeMismatch(t *testing.T) {
	t.Parallel()

	deep := MustBuild(t, "e", map[int][]string{0: {"a", "x"}}, 2)
	flat := MustBuild(t, "e", map[int][]string{1: {"a"}}, 1)

	err := deep.Unite(flat)
	require.ErrorIs(t, err, labeltree.ErrShapeMismatch)
}

func TestVisibleBranch(t *testing.T) {
	t.Parallel()

	root := MustBuild(t, "e", map[int][]string{0: {"p"}, 1: {"q"}, 2: {"r"}}, 1)
	root.Children()[0].SetOwnVisible(false)

	branch, rest := labeltree.VisibleBranch(root.Children(), "Sum", 1)
	require.NotNil(t, branch)
	require.Equal(t, "Sum - 1", branch.Text())
	require.Equal(t, []string{"r"}, texts(rest))
	// The invisible sibling was dropped from the parent.
	require.Equal(t, []string{"Sum - 1", "r"}, texts(root.Children()))

	root.SetVisible(false)
	branch, rest = labeltree.VisibleBranch(root.Children(), "Sum", 1)
	require.Nil(t, branch)
	require.Empty(t, rest)
}

func TestSectionLabels(t *testing.T) {
	t.Parallel()

	root := MustBuild(t, "e", scenarioLabels(), 2)
	got := root.SectionLabels(10, 2)
	want := map[int][]string{
		10: {"a", "x"},
		11: {"a", "y"},
		12: {"b", "x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SectionLabels mismatch (-want +got):\n%s", diff)
	}

	// Only the first level requested.
	got = root.SectionLabels(0, 1)
	want = map[int][]string{0: {"a"}, 1: {"a"}, 2: {"b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SectionLabels(dim=1) mismatch (-want +got):\n%s", diff)
	}

	require.Empty(t, root.SectionLabels(0, 0))
}

func TestUnitedSections(t *testing.T) {
	t.Parallel()

	root := labeltree.New("e", labeltree.NoSection)
	root.Append(labeltree.NewLeaf("a", 1, 0))
	root.Append(labeltree.NewLeaf("b", 2))
	require.Equal(t, [][]int{{0, 1}, {2}}, root.UnitedSections())
}
