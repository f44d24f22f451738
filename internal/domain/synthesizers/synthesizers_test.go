package synthesizers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocomment.dev/pkg/autocomment/internal/domain/synthesizers"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

func bodyOf(n int) []string {
	body := make([]string, n)
	for i := range body {
		body[i] = "  step();"
	}

	return body
}

func TestComplexity(t *testing.T) {
	tests := []struct {
		name string
		fn   m.FunctionDecl
		want m.Complexity
	}{
		{"empty body", m.FunctionDecl{RawText: "function noop() {}"}, m.ComplexitySimple},
		{"two body lines", m.FunctionDecl{RawText: "function f() {", Body: bodyOf(2)}, m.ComplexitySimple},
		{"three body lines", m.FunctionDecl{RawText: "function f() {", Body: bodyOf(3)}, m.ComplexityMedium},
		{"return on declaration line", m.FunctionDecl{RawText: "function id(x) { return x; }"}, m.ComplexityMedium},
		{"return in body", m.FunctionDecl{RawText: "function f() {", Body: []string{"  return 1;", "}"}}, m.ComplexityMedium},
		{"six body lines", m.FunctionDecl{RawText: "function f() {", Body: bodyOf(6)}, m.ComplexityComplex},
		{"if in body", m.FunctionDecl{RawText: "function f() {", Body: []string{"  if (a) b();", "}"}}, m.ComplexityComplex},
		{"while on declaration line", m.FunctionDecl{RawText: "function spin() { while (true) {} }"}, m.ComplexityComplex},
		{"if inside identifier", m.FunctionDecl{RawText: "function notify() {}"}, m.ComplexityComplex},
		{"for inside identifier", m.FunctionDecl{RawText: "function format(x) {}"}, m.ComplexityComplex},
		{"return inside identifier", m.FunctionDecl{RawText: "function getReturnValue() {}"}, m.ComplexitySimple},
		{"lowercase return inside identifier", m.FunctionDecl{RawText: "function noreturn() {}"}, m.ComplexityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizers.Complexity(tt.fn))
		})
	}
}

func TestFunctionComment(t *testing.T) {
	tests := []struct {
		name string
		fn   m.FunctionDecl
		want string
	}{
		{
			name: "simple without parameters",
			fn:   m.FunctionDecl{Name: "noop", Parameters: []string{}},
			want: "// Function noop defined - no parameters. Simple utility function.",
		},
		{
			name: "simple with parameters",
			fn:   m.FunctionDecl{Name: "pair", Parameters: []string{"a", "b"}},
			want: "// Function pair defined - parameters: a, b. Simple utility function.",
		},
		{
			name: "medium returning a value",
			fn:   m.FunctionDecl{Name: "id", Parameters: []string{"x"}, RawText: "function id(x) { return x; }"},
			want: "// Function id defined - accepts parameters: x. Performs specific operations and returns a value.",
		},
		{
			name: "medium executing actions",
			fn:   m.FunctionDecl{Name: "greet", Parameters: []string{"name"}, Body: bodyOf(4)},
			want: "// Function greet defined - accepts parameters: name. Performs specific operations and executes actions.",
		},
		{
			name: "medium without parameters",
			fn:   m.FunctionDecl{Name: "tick", Body: bodyOf(3)},
			want: "// Function tick defined - no parameters required. Performs specific operations and executes actions.",
		},
		{
			name: "complex with parameters",
			fn:   m.FunctionDecl{Name: "area", Parameters: []string{"shape"}, Body: []string{"  if (shape) {", "  }", "}"}},
			want: "// Function area defined - takes shape as parameters. Contains complex logic with multiple operations.",
		},
		{
			name: "complex without parameters",
			fn:   m.FunctionDecl{Name: "main", Body: bodyOf(8)},
			want: "// Function main defined - no parameters. Contains complex logic with multiple operations.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizers.FunctionComment(tt.fn))
		})
	}
}

func TestShouldCommentFunction(t *testing.T) {
	assert.True(t, synthesizers.ShouldCommentFunction(m.FunctionDecl{Name: "run"}))
	assert.True(t, synthesizers.ShouldCommentFunction(m.FunctionDecl{Name: "multiply"}))
	assert.False(t, synthesizers.ShouldCommentFunction(m.FunctionDecl{Name: "add", IsArrow: true}))
	assert.False(t, synthesizers.ShouldCommentFunction(m.FunctionDecl{Name: m.AnonymousName, IsAnonymous: true}))
	assert.False(t, synthesizers.ShouldCommentFunction(m.FunctionDecl{Name: m.AnonymousName}))
}

func TestVariablePurpose(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"items", "collection of items"},
		{"userList", "collection of items"},
		{"byteArray", "collection of items"},
		{"status", "collection of items"},
		{"totalCount", "counter or total value"},
		{"grandTotal", "counter or total value"},
		{"debugFlag", "boolean flag"},
		{"IsReady", "boolean flag"},
		{"isReady", "data storage"},
		{"userName", "text identifier"},
		{"pageTitle", "text identifier"},
		{"userData", "data container"},
		{"buildInfo", "data container"},
		{"finalResult", "computation result"},
		{"htmlOutput", "computation result"},
		{"foo", "temporary variable"},
		{"config", "data storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizers.VariablePurpose(tt.name))
		})
	}
}

func TestShouldCommentVariable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x", false},
		{"ab", false},
		{"tmp", false},
		{"temp", false},
		{"arr", false},
		{"obj", false},
		{"foo", true},
		{"count", true},
		{"userName", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizers.ShouldCommentVariable(m.VariableDecl{Name: tt.name}))
		})
	}
}

func TestVariableComment(t *testing.T) {
	assert.Equal(t,
		"// let variable count created - used for data storage.",
		synthesizers.VariableComment(m.VariableDecl{Name: "count", Binding: m.BindingLet}))
	assert.Equal(t,
		"// const variable totalCount created - used for counter or total value.",
		synthesizers.VariableComment(m.VariableDecl{Name: "totalCount", Binding: m.BindingConst}))
}

func TestClassComment(t *testing.T) {
	assert.True(t, synthesizers.ShouldCommentClass(m.ClassDecl{Name: "Shape"}))
	assert.False(t, synthesizers.ShouldCommentClass(m.ClassDecl{}))
	assert.False(t, synthesizers.ShouldCommentClass(m.ClassDecl{Name: m.AnonymousName}))
	assert.Equal(t,
		"// Class Shape defined - represents an entity or component with related properties and methods.",
		synthesizers.ClassComment(m.ClassDecl{Name: "Shape"}))
}

func TestSynthesize(t *testing.T) {
	inv := m.Inventory{
		Functions: []m.FunctionDecl{
			{Name: "greet", Line: 1, Parameters: []string{"name"}},
			{Name: "add", Line: 4, IsArrow: true},
		},
		Classes: []m.ClassDecl{{Name: "Shape", Line: 6}},
		Variables: []m.VariableDecl{
			{Name: "i", Line: 2, Binding: m.BindingLet},
			{Name: "userName", Line: 3, Binding: m.BindingConst},
		},
	}

	comments := synthesizers.Synthesize(inv)
	require.Len(t, comments, 3)

	assert.Equal(t, m.Comment{
		Kind: m.KindClass,
		Name: "Shape",
		Line: 6,
		Text: "// Class Shape defined - represents an entity or component with related properties and methods.",
	}, comments[0])
	assert.Equal(t, "userName", comments[1].Name)
	assert.Equal(t, m.KindVariable, comments[1].Kind)
	assert.Equal(t, "// const variable userName created - used for text identifier.", comments[1].Text)
	assert.Equal(t, "greet", comments[2].Name)
	assert.Equal(t, 1, comments[2].Line)
}

func TestSynthesize_Empty(t *testing.T) {
	assert.Empty(t, synthesizers.Synthesize(m.Inventory{}))
}
