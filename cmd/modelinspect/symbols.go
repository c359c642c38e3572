// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modelinspector/labeltree"
	"github.com/katalvlaran/modelinspector/model"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <model.yaml> <name>",
		Short: "Print the label tree of an equation or variable symbol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := openModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := model.SymbolByName(m, model.Equation, args[1])
			if s == nil {
				s = model.SymbolByName(m, model.Variable, args[1])
			}
			if s == nil {
				return fmt.Errorf("%q: %w", args[1], errUnknownSymbol)
			}
			tree, err := s.LabelTree()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", titleStyle.Render(s.Name), mutedStyle.Render(fmt.Sprintf("(%s, dimension %d, %d entries)", s.Kind, s.Dimension, s.Entries)))
			writeTree(w, tree, 1)

			return nil
		},
	}
}

// writeTree prints the children of n, leaves with their sections.
func writeTree(w io.Writer, n *labeltree.Node, depth int) {
	for _, c := range n.Children() {
		indent := strings.Repeat("  ", depth)
		if c.IsLeaf() {
			fmt.Fprintf(w, "%s%s %v\n", indent, c.Text(), c.LeafSections())
			continue
		}
		fmt.Fprintln(w, indent+rowHeaderStyle.Render(c.Text()))
		writeTree(w, c, depth+1)
	}
}
