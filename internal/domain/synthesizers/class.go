package synthesizers

import (
	"fmt"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// ShouldCommentClass reports whether cls has a usable name.
func ShouldCommentClass(cls m.ClassDecl) bool {
	return cls.Name != "" && cls.Name != m.AnonymousName
}

// ClassComment renders the generic class comment.
func ClassComment(cls m.ClassDecl) string {
	return fmt.Sprintf("// Class %s defined - represents an entity or component with related properties and methods.", cls.Name)
}
