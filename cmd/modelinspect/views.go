// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/view"
)

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views <model.yaml>",
		Short: "List the view types and the symbols they can select",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := openModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			names := make([]string, 0, len(view.Types()))
			for _, t := range view.Types() {
				names = append(names, t.String())
			}
			fmt.Fprintln(w, titleStyle.Render(m.Name()))
			fmt.Fprintf(w, "views: %s\n\n", strings.Join(names, ", "))

			rows := [][]string{}
			for _, group := range [][]*model.Symbol{m.Equations(), m.Variables()} {
				for _, s := range group {
					rows = append(rows, []string{
						strconv.Itoa(s.Offset), s.Kind.String(), s.Name,
						strconv.Itoa(s.Dimension), strconv.Itoa(s.Entries),
						sectionRange(s),
					})
				}
			}
			writeTable(w, []string{"#", "kind", "name", "dim", "entries", "sections"}, nil, rows)

			return nil
		},
	}
}

func sectionRange(s *model.Symbol) string {
	if s.Entries == 0 {
		return "-"
	}
	if s.Entries == 1 {
		return strconv.Itoa(s.FirstSection)
	}

	return strconv.Itoa(s.FirstSection) + ".." + strconv.Itoa(s.LastSection)
}
