package synthesizers

import (
	"fmt"
	"strings"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// Keywords are matched as plain substrings, so "notify" counts as an if.
var controlFlowKeywords = []string{"if", "for", "while"}

const returnKeyword = "return"

// functionShape is the surface information complexity rules look at.
type functionShape struct {
	bodyLines      int
	hasReturn      bool
	hasControlFlow bool
}

// Thresholds are checked from the highest level down.
var complexityRules = []rule[functionShape, m.Complexity]{
	{match: func(s functionShape) bool { return s.bodyLines > 5 || s.hasControlFlow }, result: m.ComplexityComplex},
	{match: func(s functionShape) bool { return s.bodyLines > 2 || s.hasReturn }, result: m.ComplexityMedium},
}

func shapeOf(fn m.FunctionDecl) functionShape {
	text := fn.RawText + "\n" + strings.Join(fn.Body, "\n")

	return functionShape{
		bodyLines:      len(fn.Body),
		hasReturn:      strings.Contains(text, returnKeyword),
		hasControlFlow: containsAny(text, controlFlowKeywords...),
	}
}

// Complexity estimates how involved a function is from its declaration line
// and body text.
func Complexity(fn m.FunctionDecl) m.Complexity {
	return firstMatch(complexityRules, shapeOf(fn), m.ComplexitySimple)
}

// ShouldCommentFunction reports whether fn receives a comment. Anonymous and
// arrow-form functions are skipped.
func ShouldCommentFunction(fn m.FunctionDecl) bool {
	return !fn.IsAnonymous && fn.Name != m.AnonymousName && !fn.IsArrow
}

// FunctionComment renders the comment for fn according to its complexity.
func FunctionComment(fn m.FunctionDecl) string {
	params := strings.Join(fn.Parameters, ", ")
	hasParams := len(fn.Parameters) > 0

	switch Complexity(fn) {
	case m.ComplexityComplex:
		return fmt.Sprintf("// Function %s defined - %s. Contains complex logic with multiple operations.",
			fn.Name, either(hasParams, "takes "+params+" as parameters", "no parameters"))
	case m.ComplexityMedium:
		return fmt.Sprintf("// Function %s defined - %s. Performs specific operations and %s.",
			fn.Name,
			either(hasParams, "accepts parameters: "+params, "no parameters required"),
			either(shapeOf(fn).hasReturn, "returns a value", "executes actions"))
	case m.ComplexitySimple:
	}

	return fmt.Sprintf("// Function %s defined - %s. Simple utility function.",
		fn.Name, either(hasParams, "parameters: "+params, "no parameters"))
}

func either(cond bool, yes, no string) string {
	if cond {
		return yes
	}

	return no
}
