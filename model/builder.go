// SPDX-License-Identifier: MIT

package model

import (
	"slices"

	"github.com/katalvlaran/modelinspector/sparse"
)

// EntrySpec is one scalar instance of a symbol.
//
// For equations RHS, Level, Marginal and Basic are used; Lower and Upper are
// the row activity bounds. For variables RHS is ignored.
type EntrySpec struct {
	Labels   []string `yaml:"labels"`
	RHS      float64  `yaml:"rhs"`
	Level    float64  `yaml:"level"`
	Marginal float64  `yaml:"marginal"`
	Lower    *float64 `yaml:"lower"`
	Upper    *float64 `yaml:"upper"`
	Basic    bool     `yaml:"basic"`
}

// SymbolSpec declares one equation or variable symbol.
type SymbolSpec struct {
	Name      string      `yaml:"name"`
	Type      string      `yaml:"type"`
	Dimension int         `yaml:"dimension"`
	Entries   []EntrySpec `yaml:"entries"`
}

// Coefficient is one Jacobian entry addressed by absolute sections.
type Coefficient struct {
	Row   int     `yaml:"row"`
	Col   int     `yaml:"col"`
	Value float64 `yaml:"value"`
}

// Builder assembles a Memory instance. Sections are assigned in declaration
// order: the first equation symbol starts at row 0, the next continues where
// it ended, and likewise for variables.
//
// Builder is not safe for concurrent use.
type Builder struct {
	name      string
	equations []SymbolSpec
	variables []SymbolSpec
	coefs     []Coefficient
	special   SpecialValues
	hasBasis  bool
}

// NewBuilder returns an empty builder with the default sentinel set.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, special: DefaultSpecialValues()}
}

// Equation appends an equation symbol.
func (b *Builder) Equation(s SymbolSpec) *Builder {
	b.equations = append(b.equations, s)
	return b
}

// Variable appends a variable symbol.
func (b *Builder) Variable(s SymbolSpec) *Builder {
	b.variables = append(b.variables, s)
	return b
}

// Coefficient records A[row, col] = v.
func (b *Builder) Coefficient(row, col int, v float64) *Builder {
	b.coefs = append(b.coefs, Coefficient{Row: row, Col: col, Value: v})
	return b
}

// SpecialValues replaces the sentinel set.
func (b *Builder) SpecialValues(sv SpecialValues) *Builder {
	b.special = sv
	return b
}

// Basis marks whether the instance carries basis information.
func (b *Builder) Basis(has bool) *Builder {
	b.hasBasis = has
	return b
}

// Build validates the declarations and returns the instance.
//
// Implementation:
//   - Stage 1: lay out symbols over contiguous section ranges; check names,
//     type codes and label arity.
//   - Stage 2: bucket coefficients per row, reject out-of-range and duplicate
//     positions, sort each row by column.
//   - Stage 3: validate the resulting symbol tiling.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateSymbol, ErrTypeCode, ErrLabelArity,
//     ErrSectionRange, ErrDuplicateCoefficient, ErrSymbolRange,
//     sparse.ErrUnsorted (never for builder input).
func (b *Builder) Build() (*Memory, error) {
	const op = "Builder.Build"
	m := &Memory{name: b.name, special: b.special, hasBasis: b.hasBasis}

	var err error
	if m.equations, err = layout(b.equations, Equation); err != nil {
		return nil, modelErrorf(op, err)
	}
	if m.variables, err = layout(b.variables, Variable); err != nil {
		return nil, modelErrorf(op, err)
	}

	for _, s := range b.equations {
		t, err := typeCode(s.Type, EquationEqual, "EGLN")
		if err != nil {
			return nil, modelErrorf(op+"("+s.Name+")", err)
		}
		for _, e := range s.Entries {
			m.rhs = append(m.rhs, e.RHS)
			m.eqType = append(m.eqType, t)
			m.eqAttr = append(m.eqAttr, Attributes{
				Level: e.Level, Marginal: e.Marginal, Basic: e.Basic,
				Lower: bound(e.Lower, rowLower(t, e.RHS, b.special)),
				Upper: bound(e.Upper, rowUpper(t, e.RHS, b.special)),
			})
		}
	}
	for _, s := range b.variables {
		t, err := typeCode(s.Type, VariableContinuous, "xbi12cs")
		if err != nil {
			return nil, modelErrorf(op+"("+s.Name+")", err)
		}
		defLower, defUpper := 0.0, b.special.PlusInf
		if t == VariableBinary {
			defUpper = 1
		}
		for _, e := range s.Entries {
			lo, up := bound(e.Lower, defLower), bound(e.Upper, defUpper)
			m.varType = append(m.varType, t)
			m.lower = append(m.lower, lo)
			m.upper = append(m.upper, up)
			m.varAttr = append(m.varAttr, Attributes{
				Level: e.Level, Marginal: e.Marginal, Basic: e.Basic, Lower: lo, Upper: up,
			})
		}
	}

	if m.rows, err = b.rows(len(m.rhs), len(m.lower)); err != nil {
		return nil, modelErrorf(op, err)
	}
	if err = ValidateSymbols(m.equations, len(m.rows)); err != nil {
		return nil, modelErrorf(op, err)
	}
	if err = ValidateSymbols(m.variables, len(m.lower)); err != nil {
		return nil, modelErrorf(op, err)
	}

	return m, nil
}

// rows buckets the coefficients into sorted sparse rows.
func (b *Builder) rows(nRows, nCols int) ([]sparse.Row, error) {
	perRow := make([][]Coefficient, nRows)
	for _, c := range b.coefs {
		if c.Row < 0 || c.Row >= nRows || c.Col < 0 || c.Col >= nCols {
			return nil, ErrSectionRange
		}
		perRow[c.Row] = append(perRow[c.Row], c)
	}

	out := make([]sparse.Row, nRows)
	for i, cs := range perRow {
		slices.SortFunc(cs, func(a, b Coefficient) int { return a.Col - b.Col })
		cols := make([]int, len(cs))
		data := make([]float64, len(cs))
		for k, c := range cs {
			if k > 0 && cs[k-1].Col == c.Col {
				return nil, ErrDuplicateCoefficient
			}
			cols[k], data[k] = c.Col, c.Value
		}
		r, err := sparse.NewRow(cols, data)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// layout assigns offsets and section ranges to specs in order.
func layout(specs []SymbolSpec, kind SymbolKind) ([]*Symbol, error) {
	out := make([]*Symbol, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	next := 0
	for i, s := range specs {
		if s.Name == "" {
			return nil, ErrEmptyName
		}
		if seen[s.Name] {
			return nil, modelErrorf(s.Name, ErrDuplicateSymbol)
		}
		seen[s.Name] = true

		sym := &Symbol{
			Name:          s.Name,
			Kind:          kind,
			Offset:        i,
			Entries:       len(s.Entries),
			Dimension:     s.Dimension,
			FirstSection:  next,
			LastSection:   next + len(s.Entries) - 1,
			SectionLabels: make(map[int][]string, len(s.Entries)),
		}
		for k, e := range s.Entries {
			if len(e.Labels) != s.Dimension {
				return nil, modelErrorf(s.Name, ErrLabelArity)
			}
			if s.Dimension > 0 {
				sym.SectionLabels[next+k] = slices.Clone(e.Labels)
			}
		}
		next += len(s.Entries)
		out = append(out, sym)
	}

	return out, nil
}

// typeCode parses a one-character type, upper-casing equation codes.
func typeCode(s string, def byte, allowed string) (byte, error) {
	if s == "" {
		return def, nil
	}
	if len(s) != 1 {
		return 0, ErrTypeCode
	}
	c := s[0]
	if def == EquationEqual && c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(allowed); i++ {
		if allowed[i] == c {
			return c, nil
		}
	}

	return 0, ErrTypeCode
}

func bound(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}

// rowLower and rowUpper derive the activity bounds implied by the equation type.
func rowLower(t byte, rhs float64, sv SpecialValues) float64 {
	switch t {
	case EquationEqual, EquationGreater:
		return rhs
	default:
		return sv.MinusInf
	}
}

func rowUpper(t byte, rhs float64, sv SpecialValues) float64 {
	switch t {
	case EquationEqual, EquationLess:
		return rhs
	default:
		return sv.PlusInf
	}
}
