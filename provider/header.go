// SPDX-License-Identifier: MIT

package provider

import "slices"

// header holds the per-logical-index texts of one axis.
type header struct {
	plain   []string   // one-line text
	labels  [][]string // per-dimension label path
	entries []int      // nonzero coefficients per logical index
}

func (h header) plainAt(i int) string {
	if i < 0 || i >= len(h.plain) {
		return ""
	}

	return h.plain[i]
}

// labelAt returns label dim of index i. Axes without label paths answer the
// plain text for dim 0.
func (h header) labelAt(i, dim int) string {
	if i < 0 || dim < 0 {
		return ""
	}
	if i < len(h.labels) && len(h.labels[i]) > 0 {
		if dim < len(h.labels[i]) {
			return h.labels[i][dim]
		}
		return ""
	}
	if dim == 0 {
		return h.plainAt(i)
	}

	return ""
}

func (h header) labelsAt(i int) []string {
	if i < 0 || i >= len(h.labels) {
		return nil
	}

	return slices.Clone(h.labels[i])
}

func (h header) clone() header {
	out := header{plain: slices.Clone(h.plain), entries: slices.Clone(h.entries)}
	if h.labels != nil {
		out.labels = make([][]string, len(h.labels))
		for i, l := range h.labels {
			out.labels[i] = slices.Clone(l)
		}
	}

	return out
}
