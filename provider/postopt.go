// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/view"
)

// Attribute line texts of a postopt group.
const (
	LineLevel         = "Level"
	LineMarginal      = "Marginal"
	LineLower         = "Lower"
	LineUpper         = "Upper"
	LineSlack         = "Slack"
	LineInfeasibility = "Infeasibility"
	LineTotal         = "Total"
)

// PostoptKind tells roots, groups and lines apart.
type PostoptKind uint8

const (
	PostoptRoot PostoptKind = iota
	PostoptGroup
	PostoptLine
	PostoptReference
)

// PostoptItem is a node of the postopt tree. Attribute lines carry Value;
// cross-reference lines carry Coefficient (a_ij), Multiplier (the partner's
// level or marginal) and their product in Value.
type PostoptItem struct {
	Text        string
	Kind        PostoptKind
	Section     int // absolute section of a group or reference, -1 otherwise
	Value       Value
	Coefficient Value
	Multiplier  Value

	children []*PostoptItem
	parent   *PostoptItem
}

func newPostoptItem(text string, kind PostoptKind, section int) *PostoptItem {
	return &PostoptItem{Text: text, Kind: kind, Section: section}
}

// Children returns the direct children in display order.
func (it *PostoptItem) Children() []*PostoptItem { return it.children }

// Parent returns the enclosing item, nil for the root.
func (it *PostoptItem) Parent() *PostoptItem { return it.parent }

// Child returns child i or nil.
func (it *PostoptItem) Child(i int) *PostoptItem {
	if i < 0 || i >= len(it.children) {
		return nil
	}

	return it.children[i]
}

// Line returns the first direct child with the given text, or nil.
func (it *PostoptItem) Line(text string) *PostoptItem {
	for _, c := range it.children {
		if c.Text == text {
			return c
		}
	}

	return nil
}

func (it *PostoptItem) append(c *PostoptItem) *PostoptItem {
	c.parent = it
	it.children = append(it.children, c)

	return c
}

// Clone deep-copies the subtree; the copy's root has no parent.
func (it *PostoptItem) Clone() *PostoptItem {
	if it == nil {
		return nil
	}
	cp := *it
	cp.parent = nil
	cp.children = make([]*PostoptItem, 0, len(it.children))
	for _, c := range it.children {
		cp.append(c.Clone())
	}

	return &cp
}

// Postopt is the post-optimality tree of one equation symbol against one
// variable symbol. It has no matrix: RowCount and ColumnCount are 0.
type Postopt struct {
	base
	root *PostoptItem
}

func (p *Postopt) clone(newViewID int) Provider {
	return &Postopt{base: p.cloneBase(newViewID), root: p.root.Clone()}
}

// Data is always invalid; use Tree.
func (p *Postopt) Data(int, int) Value { return Value{} }

// Tree returns the root item (nil before loading). It must not be modified.
func (p *Postopt) Tree() *PostoptItem { return p.root }

// load builds one group per equation entry, then one per variable entry.
//
// Implementation:
//   - Equation group i: attribute lines, then one reference per coefficient of
//     row i inside the variable range (bounded scan of the sorted row), each
//     multiplied by the variable level, then Total.
//   - Variable group j: attribute lines, then one reference per equation entry
//     whose row holds column j (binary search), multiplied by the displayed
//     equation marginal, then Total.
func (p *Postopt) load(src *source) error {
	p.root = newPostoptItem(p.cfg.Title, PostoptRoot, -1)
	eq, vr, err := selectedPair(p.cfg, src)
	if err != nil || eq == nil {
		return err
	}
	sv := src.special
	num := func(v float64) Value { return NumberValue(v, sv) }

	for i := eq.FirstSection; i <= eq.LastSection; i++ {
		a := src.inst.EquationAttributes(i)
		g := p.root.append(newPostoptItem(eq.Label(i), PostoptGroup, i))
		attributeLines(g, a, src, num)
		g.append(&PostoptItem{Text: LineSlack, Kind: PostoptLine, Section: -1, Value: num(slack(a, sv))})
		g.append(&PostoptItem{Text: LineInfeasibility, Kind: PostoptLine, Section: -1, Value: num(infeasibility(a, sv))})

		row := src.jac.Row(i)
		start, end := row.Span(vr.FirstSection, vr.LastSection)
		cols, data := row.ColIdx(), row.Data()
		total := 0.0
		for n := start; n < end; n++ {
			level := src.inst.VariableAttributes(cols[n]).Level
			total += reference(g, vr.Label(cols[n]), cols[n], data[n], level, sv)
		}
		g.append(&PostoptItem{Text: LineTotal, Kind: PostoptLine, Section: -1, Value: num(total)})
	}

	for j := vr.FirstSection; j <= vr.LastSection; j++ {
		a := src.inst.VariableAttributes(j)
		g := p.root.append(newPostoptItem(vr.Label(j), PostoptGroup, j))
		attributeLines(g, a, src, num)
		g.append(&PostoptItem{Text: LineInfeasibility, Kind: PostoptLine, Section: -1, Value: num(infeasibility(a, sv))})

		total := 0.0
		for i := eq.FirstSection; i <= eq.LastSection; i++ {
			aij, ok := src.jac.Row(i).At(j)
			if !ok {
				continue
			}
			marginal := src.policy.Marginal(src.inst.EquationAttributes(i), sv)
			total += reference(g, eq.Label(i), i, aij, marginal, sv)
		}
		g.append(&PostoptItem{Text: LineTotal, Kind: PostoptLine, Section: -1, Value: num(total)})
	}

	return nil
}

func attributeLines(g *PostoptItem, a model.Attributes, src *source, num func(float64) Value) {
	for _, l := range []struct {
		text string
		v    float64
	}{
		{LineLevel, a.Level},
		{LineMarginal, src.policy.Marginal(a, src.special)},
		{LineLower, a.Lower},
		{LineUpper, a.Upper},
	} {
		g.append(&PostoptItem{Text: l.text, Kind: PostoptLine, Section: -1, Value: num(l.v)})
	}
}

// reference appends a cross-reference line and returns its contribution to
// the group total. Non-regular factors contribute nothing.
func reference(g *PostoptItem, text string, section int, aij, mult float64, sv model.SpecialValues) float64 {
	product := 0.0
	if sv.IsRegular(aij) && sv.IsRegular(mult) {
		product = aij * mult
	}
	g.append(&PostoptItem{
		Text:        text,
		Kind:        PostoptReference,
		Section:     section,
		Value:       NumberValue(product, sv),
		Coefficient: NumberValue(aij, sv),
		Multiplier:  NumberValue(mult, sv),
	})

	return product
}

// slack is the distance of the level to the nearest finite bound, +INF when
// both bounds are infinite.
func slack(a model.Attributes, sv model.SpecialValues) float64 {
	s := math.Inf(1)
	if finite(a.Lower, sv) {
		s = a.Level - a.Lower
	}
	if finite(a.Upper, sv) {
		s = math.Min(s, a.Upper-a.Level)
	}
	if math.IsInf(s, 1) {
		return sv.PlusInf
	}

	return s
}

// infeasibility is the bound violation of the level, 0 when feasible.
func infeasibility(a model.Attributes, sv model.SpecialValues) float64 {
	inf := 0.0
	if finite(a.Lower, sv) {
		inf = math.Max(inf, a.Lower-a.Level)
	}
	if finite(a.Upper, sv) {
		inf = math.Max(inf, a.Level-a.Upper)
	}

	return inf
}

func finite(v float64, sv model.SpecialValues) bool {
	switch sv.Classify(v) {
	case model.PlusInf, model.MinusInf, model.NA, model.Undf:
		return false
	default:
		return true
	}
}

var _ Provider = (*Postopt)(nil)

// header of a postopt view is empty; groups carry their own texts.
func (p *Postopt) header(view.Orientation) header { return header{} }
