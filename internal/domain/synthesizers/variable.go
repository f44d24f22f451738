package synthesizers

import (
	"fmt"
	"strings"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// trivialNames never receive a comment.
var trivialNames = map[string]struct{}{
	"i": {}, "j": {}, "k": {}, "x": {}, "y": {}, "z": {},
	"cb": {}, "fn": {}, "arr": {}, "obj": {}, "num": {}, "str": {}, "tmp": {}, "temp": {},
}

// Substring tests are case-sensitive: "isReady" is not a flag, "IsReady" is.
var purposeRules = []rule[string, string]{
	{match: func(n string) bool { return containsAny(n, "List", "Array") || strings.HasSuffix(n, "s") }, result: "collection of items"},
	{match: func(n string) bool { return containsAny(n, "Count", "Total") }, result: "counter or total value"},
	{match: func(n string) bool { return containsAny(n, "Flag", "Is", "Has") }, result: "boolean flag"},
	{match: func(n string) bool { return containsAny(n, "Name", "Title") }, result: "text identifier"},
	{match: func(n string) bool { return containsAny(n, "Data", "Info") }, result: "data container"},
	{match: func(n string) bool { return containsAny(n, "Result", "Output") }, result: "computation result"},
	{match: func(n string) bool { return len(n) <= 3 }, result: "temporary variable"},
}

// VariablePurpose guesses what a variable is used for from its name.
func VariablePurpose(name string) string {
	return firstMatch(purposeRules, name, "data storage")
}

// ShouldCommentVariable filters out short and conventional throwaway names.
func ShouldCommentVariable(v m.VariableDecl) bool {
	if len(v.Name) <= 2 {
		return false
	}

	_, trivial := trivialNames[v.Name]

	return !trivial
}

// VariableComment renders the comment for v.
func VariableComment(v m.VariableDecl) string {
	return fmt.Sprintf("// %s variable %s created - used for %s.", v.Binding, v.Name, VariablePurpose(v.Name))
}
