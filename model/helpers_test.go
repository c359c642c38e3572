// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelinspector/model"
)

// transport loads testdata/transport.yaml.
func transport(t *testing.T) *model.Memory {
	t.Helper()
	m, err := model.LoadYAML("testdata/transport.yaml")
	require.NoError(t, err)

	return m
}

// scalar returns a spec of one scalar entry.
func scalar(name string) model.SymbolSpec {
	return model.SymbolSpec{Name: name, Entries: []model.EntrySpec{{}}}
}
