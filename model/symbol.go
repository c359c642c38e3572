// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/modelinspector/labeltree"
)

// SymbolKind tells equation blocks from variable blocks.
type SymbolKind uint8

const (
	// Equation symbols address rows of the Jacobian.
	Equation SymbolKind = iota
	// Variable symbols address columns of the Jacobian.
	Variable
)

// String returns "equation" or "variable".
func (k SymbolKind) String() string {
	switch k {
	case Equation:
		return "equation"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("SymbolKind(%d)", uint8(k))
	}
}

// Symbol is a named block of equation or variable sections.
//
// A Symbol is immutable once its instance is built; only the label tree is
// materialized on first use. Symbols are shared by pointer and must not be copied.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Offset    int // position in the instance's equation or variable list
	Entries   int // number of scalar instances (sections)
	Dimension int

	// FirstSection and LastSection bound the absolute section range (inclusive).
	// An empty symbol has LastSection == FirstSection-1.
	FirstSection int
	LastSection  int

	// SectionLabels maps absolute section → labels, one per dimension.
	SectionLabels map[int][]string

	once    sync.Once
	tree    *labeltree.Node
	treeErr error
}

// Contains reports whether section belongs to s.
func (s *Symbol) Contains(section int) bool {
	return section >= s.FirstSection && section <= s.LastSection
}

// Sections returns the absolute sections of s in ascending order.
func (s *Symbol) Sections() []int {
	out := make([]int, 0, s.Entries)
	for i := s.FirstSection; i <= s.LastSection; i++ {
		out = append(out, i)
	}

	return out
}

// LabelTree returns the canonical label tree of s, building it on first call.
// Callers that restructure the tree must work on a Clone.
func (s *Symbol) LabelTree() (*labeltree.Node, error) {
	s.once.Do(func() {
		labels := s.SectionLabels
		if s.Dimension == 0 {
			// Scalar symbols carry no labels; the tree is one leaf over all sections.
			labels = make(map[int][]string, s.Entries)
			for _, sec := range s.Sections() {
				labels[sec] = nil
			}
		}
		s.tree, s.treeErr = labeltree.Build(s.Name, labels, s.Dimension)
	})

	return s.tree, s.treeErr
}

// Label returns "name(l1,l2,...)" for section, or the bare name for scalars.
// Sections outside s yield "".
func (s *Symbol) Label(section int) string {
	if !s.Contains(section) {
		return ""
	}
	l := s.SectionLabels[section]
	if len(l) == 0 {
		return s.Name
	}

	return s.Name + "(" + strings.Join(l, ",") + ")"
}

// SectionBlocks maps every section in [0, sections) to the Offset of the
// symbol containing it, -1 for sections no symbol covers.
// Complexity: O(sections + len(symbols)).
func SectionBlocks(symbols []*Symbol, sections int) []int {
	if sections < 0 {
		sections = 0
	}
	out := make([]int, sections)
	for i := range out {
		out[i] = -1
	}
	for _, s := range symbols {
		for sec := max(s.FirstSection, 0); sec <= s.LastSection && sec < sections; sec++ {
			out[sec] = s.Offset
		}
	}

	return out
}

// FindSymbol returns the symbol containing section, or nil.
// Symbols are ordered by section, so the lookup is a binary search.
func FindSymbol(symbols []*Symbol, section int) *Symbol {
	lo, hi := 0, len(symbols)
	for lo < hi {
		mid := (lo + hi) / 2
		switch s := symbols[mid]; {
		case section < s.FirstSection:
			hi = mid
		case section > s.LastSection:
			lo = mid + 1
		default:
			return s
		}
	}

	return nil
}

// ValidateSymbols checks that symbols tile [0, sections) in order without
// overlaps or gaps, and that every Offset matches the list position.
//
// Errors:
//   - ErrSymbolRange.
func ValidateSymbols(symbols []*Symbol, sections int) error {
	const op = "ValidateSymbols"
	next := 0
	for i, s := range symbols {
		if s.Offset != i || s.FirstSection != next || s.Entries < 0 ||
			s.LastSection != s.FirstSection+s.Entries-1 {
			return modelErrorf(op+"("+s.Name+")", ErrSymbolRange)
		}
		next = s.LastSection + 1
	}
	if next != sections {
		return modelErrorf(op, ErrSymbolRange)
	}

	return nil
}
