// SPDX-License-Identifier: MIT

package aggregation

// Aggregation is the configuration of one aggregated view: the reduction, the
// absolute-value switch and the per-symbol items of both orientations.
type Aggregation struct {
	Type              Type
	UseAbsoluteValues bool
	Rows              map[int]*Item // equation symbol offset → item
	Columns           map[int]*Item // variable symbol offset → item
}

// New returns an empty aggregation of type t.
func New(t Type) Aggregation {
	return Aggregation{Type: t, Rows: make(map[int]*Item), Columns: make(map[int]*Item)}
}

// Active reports whether a reduction is selected.
func (a Aggregation) Active() bool { return a.Type != None }

// TypeText is the name united branches are tagged with.
func (a Aggregation) TypeText() string { return a.Type.String() }

// Clone returns a deep copy.
func (a Aggregation) Clone() Aggregation {
	cp := Aggregation{Type: a.Type, UseAbsoluteValues: a.UseAbsoluteValues}
	if a.Rows != nil {
		cp.Rows = make(map[int]*Item, len(a.Rows))
		for k, it := range a.Rows {
			cp.Rows[k] = it.Clone()
		}
	}
	if a.Columns != nil {
		cp.Columns = make(map[int]*Item, len(a.Columns))
		for k, it := range a.Columns {
			cp.Columns[k] = it.Clone()
		}
	}

	return cp
}
