// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML form of a model instance:
//
//	name: transport
//	basis: true
//	equations:
//	  - name: supply
//	    type: L
//	    dimension: 1
//	    entries:
//	      - {labels: [seattle], rhs: 350, level: 350, marginal: 0}
//	variables:
//	  - name: x
//	    dimension: 2
//	    entries:
//	      - {labels: [seattle, new-york], level: 50, upper: .inf}
//	coefficients:
//	  - {row: 0, col: 0, value: 1}
//
// Omitted special_values fields keep their IEEE defaults.
type Fixture struct {
	Name          string        `yaml:"name"`
	Basis         bool          `yaml:"basis"`
	SpecialValues SpecialValues `yaml:"special_values"`
	Equations     []SymbolSpec  `yaml:"equations"`
	Variables     []SymbolSpec  `yaml:"variables"`
	Coefficients  []Coefficient `yaml:"coefficients"`
}

// Builder returns a Builder loaded with the fixture's declarations.
func (f *Fixture) Builder() *Builder {
	b := NewBuilder(f.Name).Basis(f.Basis).SpecialValues(f.SpecialValues)
	for _, s := range f.Equations {
		b.Equation(s)
	}
	for _, s := range f.Variables {
		b.Variable(s)
	}
	for _, c := range f.Coefficients {
		b.Coefficient(c.Row, c.Col, c.Value)
	}

	return b
}

// DecodeYAML reads one Fixture document from r and builds it.
// Unknown keys are rejected. An empty document is an empty model.
func DecodeYAML(r io.Reader) (*Memory, error) {
	f := Fixture{SpecialValues: DefaultSpecialValues()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("model: decode yaml: %w", err)
	}

	return f.Builder().Build()
}

// LoadYAML decodes the fixture stored at path.
func LoadYAML(path string) (*Memory, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open fixture: %w", err)
	}
	defer fh.Close()

	m, err := DecodeYAML(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
