// SPDX-License-Identifier: MIT

package view

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/modelinspector/aggregation"
)

// Config describes one view. The provider layer reads it and never keeps a
// reference past the call that received it, except for the copy in its cache.
type Config struct {
	ID    int
	Type  Type
	Title string

	// Session is the id of the session that issued ID.
	Session uuid.UUID

	// Equations and Variables are the checked symbol offsets. Symbols and
	// Postopt views use exactly one of each.
	Equations []int
	Variables []int

	// UseAbsoluteValues switches Scaling and Symbols to |a_ij|.
	UseAbsoluteValues bool

	Filter      ValueFilter
	LabelFilter aggregation.LabelFilter
	Aggregation aggregation.Aggregation
}

// Symbol returns the single checked (equation, variable) pair, ok=false
// unless exactly one of each is checked.
func (c *Config) Symbol() (equation, variable int, ok bool) {
	if c == nil || len(c.Equations) != 1 || len(c.Variables) != 1 {
		return -1, -1, false
	}

	return c.Equations[0], c.Variables[0], true
}

// Clone returns a deep copy carrying newID. A nil Config clones to nil.
func (c *Config) Clone(newID int) *Config {
	if c == nil {
		return nil
	}
	cp := *c
	cp.ID = newID
	cp.Equations = slices.Clone(c.Equations)
	cp.Variables = slices.Clone(c.Variables)
	cp.LabelFilter = cloneLabelFilter(c.LabelFilter)
	cp.Aggregation = c.Aggregation.Clone()

	return &cp
}

func cloneLabelFilter(f aggregation.LabelFilter) aggregation.LabelFilter {
	out := f
	out.Identifiers = maps.Clone(f.Identifiers)
	out.Labels = maps.Clone(f.Labels)
	out.Sections = maps.Clone(f.Sections)

	return out
}
