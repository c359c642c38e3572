// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	rowHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	specialStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const columnGap = "  "

// renderView prints the view installed under viewID.
func renderView(w io.Writer, h *provider.Handler, viewID int) {
	cfg := h.Config(viewID)
	if cfg == nil {
		fmt.Fprintln(w, mutedStyle.Render("(no view)"))
		return
	}
	fmt.Fprintln(w, titleStyle.Render(cfg.Title))

	if cfg.Type == view.Postopt {
		if root := h.DataTree(viewID); root != nil && len(root.Children()) > 0 {
			renderTree(w, root, 0)
			return
		}
		fmt.Fprintln(w, mutedStyle.Render("(empty view)"))
		return
	}

	R, C := h.RowCount(viewID), h.ColumnCount(viewID)
	if R == 0 || C == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(empty view)"))
		return
	}
	cols := make([]string, C)
	for j := range cols {
		cols[j] = h.PlainHeaderData(view.Horizontal, viewID, j)
	}
	rowHeaders := make([]string, R)
	cells := make([][]string, R)
	for i := range cells {
		rowHeaders[i] = rowHeader(h, viewID, i)
		cells[i] = make([]string, C)
		for j := range cells[i] {
			cells[i][j] = h.Data(i, j, viewID).String()
		}
	}
	writeTable(w, append([]string{""}, cols...), rowHeaders, cells)

	lo, hi := h.DataRange(viewID)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("range %g .. %g", lo, hi)))
}

// rowHeader prefers the label path when it extends the plain text, as the
// max/min rows of a scaling view do.
func rowHeader(h *provider.Handler, viewID, i int) string {
	plain := h.PlainHeaderData(view.Vertical, viewID, i)
	labels := h.SectionLabels(view.Vertical, viewID, i)
	if len(labels) > 1 && labels[0] == plain {
		return strings.Join(labels, " ")
	}

	return plain
}

// writeTable prints rows under header. When rowHeaders is set, header[0]
// heads that column.
func writeTable(w io.Writer, header, rowHeaders []string, rows [][]string) {
	widths := make([]int, len(header))
	grow := func(j int, s string) {
		if n := lipgloss.Width(s); n > widths[j] {
			widths[j] = n
		}
	}
	for j, s := range header {
		grow(j, s)
	}
	shift := 0
	if rowHeaders != nil {
		shift = 1
		for _, s := range rowHeaders {
			grow(0, s)
		}
	}
	for _, r := range rows {
		for j, s := range r {
			if j+shift < len(widths) {
				grow(j+shift, s)
			}
		}
	}

	line := make([]string, 0, len(header))
	for j, s := range header {
		line = append(line, headerStyle.Render(pad(s, widths[j], shift == 0 || j == 0)))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(line, columnGap), " "))

	for i, r := range rows {
		line = line[:0]
		if rowHeaders != nil {
			line = append(line, rowHeaderStyle.Render(pad(rowHeaders[i], widths[0], true)))
		}
		for j, s := range r {
			if j+shift >= len(widths) {
				break
			}
			st := lipgloss.NewStyle()
			if isSpecial(s) {
				st = specialStyle
			}
			line = append(line, st.Render(pad(s, widths[j+shift], shift == 0)))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, columnGap), " "))
	}
}

// renderTree prints a postopt subtree, two spaces per level.
func renderTree(w io.Writer, it *provider.PostoptItem, depth int) {
	for _, c := range it.Children() {
		indent := strings.Repeat("  ", depth)
		switch c.Kind {
		case provider.PostoptGroup:
			fmt.Fprintln(w, indent+rowHeaderStyle.Render(c.Text))
			renderTree(w, c, depth+1)
		case provider.PostoptReference:
			fmt.Fprintf(w, "%s%s  %s × %s = %s\n", indent, c.Text,
				c.Coefficient.String(), c.Multiplier.String(), c.Value.String())
		default:
			fmt.Fprintf(w, "%s%s  %s\n", indent, c.Text, c.Value.String())
		}
	}
}

// pad left-aligns s in width columns, or right-aligns it when left is false.
func pad(s string, width int, left bool) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", n)
	}

	return strings.Repeat(" ", n) + s
}

func isSpecial(s string) bool {
	switch s {
	case "+INF", "-INF", "EPS", "NA", "UNDF":
		return true
	default:
		return false
	}
}
