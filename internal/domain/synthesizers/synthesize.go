package synthesizers

import (
	"sort"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// Synthesize produces one comment per declaration that passes its kind's
// filter, sorted by descending target line.
func Synthesize(inv m.Inventory) []m.Comment {
	comments := make([]m.Comment, 0, len(inv.Functions)+len(inv.Classes)+len(inv.Variables))

	for _, fn := range inv.Functions {
		if ShouldCommentFunction(fn) {
			comments = append(comments, commentFor(fn, FunctionComment(fn)))
		}
	}

	for _, cls := range inv.Classes {
		if ShouldCommentClass(cls) {
			comments = append(comments, commentFor(cls, ClassComment(cls)))
		}
	}

	for _, v := range inv.Variables {
		if ShouldCommentVariable(v) {
			comments = append(comments, commentFor(v, VariableComment(v)))
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Line > comments[j].Line
	})

	return comments
}

func commentFor(decl m.Declaration, text string) m.Comment {
	return m.Comment{
		Kind: decl.Kind(),
		Name: decl.DeclName(),
		Line: decl.DeclLine(),
		Text: text,
	}
}
