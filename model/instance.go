// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/modelinspector/sparse"

// Equation type codes.
const (
	EquationEqual   byte = 'E' // =e=
	EquationGreater byte = 'G' // =g=
	EquationLess    byte = 'L' // =l=
	EquationFree    byte = 'N' // =n=
)

// Variable type codes.
const (
	VariableContinuous byte = 'x'
	VariableBinary     byte = 'b'
	VariableInteger    byte = 'i'
	VariableSOS1       byte = '1'
	VariableSOS2       byte = '2'
	VariableSemiCont   byte = 'c'
	VariableSemiInt    byte = 's'
)

// Instance is the read-only view of a solved model the inspector consumes.
//
// Equation and variable symbols are ordered by section and tile
// [0, EquationCount()) and [0, VariableCount()) respectively. Rows returned by
// Row have ascending column indices. Index arguments outside the valid range
// return zero values.
type Instance interface {
	// Name is the model name used in titles.
	Name() string

	Equations() []*Symbol
	Variables() []*Symbol

	// EquationCount is the number of equation sections (Jacobian rows).
	EquationCount() int
	// VariableCount is the number of variable sections (Jacobian columns).
	VariableCount() int

	// Row returns the sparse Jacobian row of equation section i.
	Row(i int) sparse.Row
	// RHS returns the right-hand side of equation section i.
	RHS(i int) float64

	// VariableLowerBounds copies the lower bounds into dst (len >= VariableCount()).
	VariableLowerBounds(dst []float64)
	// VariableUpperBounds copies the upper bounds into dst (len >= VariableCount()).
	VariableUpperBounds(dst []float64)

	EquationType(i int) byte
	VariableType(j int) byte

	EquationAttributes(i int) Attributes
	VariableAttributes(j int) Attributes

	SpecialValues() SpecialValues
	HasBasis() bool
}

// EquationSymbol returns the equation symbol containing section, or nil.
func EquationSymbol(inst Instance, section int) *Symbol {
	return FindSymbol(inst.Equations(), section)
}

// VariableSymbol returns the variable symbol containing section, or nil.
func VariableSymbol(inst Instance, section int) *Symbol {
	return FindSymbol(inst.Variables(), section)
}

// SymbolByName returns the symbol of the given kind and name, or nil.
func SymbolByName(inst Instance, kind SymbolKind, name string) *Symbol {
	list := inst.Equations()
	if kind == Variable {
		list = inst.Variables()
	}
	for _, s := range list {
		if s.Name == name {
			return s
		}
	}

	return nil
}
