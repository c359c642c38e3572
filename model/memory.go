// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/modelinspector/sparse"

// Memory is an Instance held entirely in memory. Build one with Builder or
// DecodeYAML; a Memory is never mutated afterwards and is safe for
// concurrent readers.
type Memory struct {
	name      string
	equations []*Symbol
	variables []*Symbol
	rows      []sparse.Row
	rhs       []float64
	eqType    []byte
	varType   []byte
	lower     []float64
	upper     []float64
	eqAttr    []Attributes
	varAttr   []Attributes
	special   SpecialValues
	hasBasis  bool
}

var _ Instance = (*Memory)(nil)

func (m *Memory) Name() string                { return m.name }
func (m *Memory) Equations() []*Symbol         { return m.equations }
func (m *Memory) Variables() []*Symbol         { return m.variables }
func (m *Memory) EquationCount() int           { return len(m.rows) }
func (m *Memory) VariableCount() int           { return len(m.lower) }
func (m *Memory) HasBasis() bool               { return m.hasBasis }
func (m *Memory) SpecialValues() SpecialValues { return m.special }

// Row returns the Jacobian row of equation section i, empty when out of range.
func (m *Memory) Row(i int) sparse.Row {
	if i < 0 || i >= len(m.rows) {
		return sparse.Row{}
	}

	return m.rows[i]
}

func (m *Memory) RHS(i int) float64 { return at(m.rhs, i) }

func (m *Memory) VariableLowerBounds(dst []float64) { copy(dst, m.lower) }
func (m *Memory) VariableUpperBounds(dst []float64) { copy(dst, m.upper) }

func (m *Memory) EquationType(i int) byte {
	if i < 0 || i >= len(m.eqType) {
		return 0
	}

	return m.eqType[i]
}

func (m *Memory) VariableType(j int) byte {
	if j < 0 || j >= len(m.varType) {
		return 0
	}

	return m.varType[j]
}

func (m *Memory) EquationAttributes(i int) Attributes {
	if i < 0 || i >= len(m.eqAttr) {
		return Attributes{}
	}

	return m.eqAttr[i]
}

func (m *Memory) VariableAttributes(j int) Attributes {
	if j < 0 || j >= len(m.varAttr) {
		return Attributes{}
	}

	return m.varAttr[j]
}

func at(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}

	return s[i]
}
