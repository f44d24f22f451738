package domain

import (
	"slices"
	"sort"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// Reconcile returns a copy of lines with every comment inserted directly
// above the original line it targets. Neither argument is modified.
//
// Comments are inserted from the highest target line down so that each
// insertion index is still expressed in original line numbers: an insert at
// line N never moves any line above N.
func Reconcile(lines []string, comments []m.Comment) []string {
	ordered := slices.Clone(comments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Line > ordered[j].Line
	})

	out := make([]string, len(lines), len(lines)+len(ordered))
	copy(out, lines)

	for _, comment := range ordered {
		index := min(max(comment.Line-1, 0), len(lines))
		out = slices.Insert(out, index, comment.Text)
	}

	return out
}
