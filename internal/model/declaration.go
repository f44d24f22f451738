package model

import "sort"

// DeclarationKind discriminates the declaration variants.
type DeclarationKind string

const (
	// KindFunction marks function declarations (keyword, arrow or expression form).
	KindFunction DeclarationKind = "function"
	// KindClass marks class declarations.
	KindClass DeclarationKind = "class"
	// KindVariable marks const/let bindings that are not functions.
	KindVariable DeclarationKind = "variable"
)

// AnonymousName is assigned to functions whose identifier cannot be isolated.
const AnonymousName = "anonymous"

// BindingForm distinguishes immutable and mutable variable bindings.
type BindingForm string

const (
	// BindingConst is the immutable binding keyword.
	BindingConst BindingForm = "const"
	// BindingLet is the mutable binding keyword.
	BindingLet BindingForm = "let"
)

// Declaration is one recognized declaration. The set of implementations is
// closed: FunctionDecl, ClassDecl and VariableDecl.
type Declaration interface {
	Kind() DeclarationKind
	DeclName() string
	DeclLine() int
	declaration()
}

// FunctionDecl is a function recognized on a single line.
type FunctionDecl struct {
	Name        string   `json:"name" yaml:"name"`
	Line        int      `json:"line" yaml:"line"`
	RawText     string   `json:"code" yaml:"code"`
	Parameters  []string `json:"params" yaml:"params"`
	IsArrow     bool     `json:"isArrow" yaml:"is_arrow"`
	IsAnonymous bool     `json:"isAnonymous" yaml:"is_anonymous"`
	// Body holds the lines following the declaration up to its closing brace.
	// It feeds complexity estimation only.
	Body []string `json:"-" yaml:"-"`
}

// ClassDecl is a class recognized on a single line.
type ClassDecl struct {
	Name    string `json:"name" yaml:"name"`
	Line    int    `json:"line" yaml:"line"`
	RawText string `json:"code" yaml:"code"`
}

// VariableDecl is a const/let binding recognized on a single line.
type VariableDecl struct {
	Name    string      `json:"name" yaml:"name"`
	Line    int         `json:"line" yaml:"line"`
	RawText string      `json:"code" yaml:"code"`
	Binding BindingForm `json:"type" yaml:"type"`
}

// Kind implements Declaration.
func (FunctionDecl) Kind() DeclarationKind { return KindFunction }

// DeclName implements Declaration.
func (f FunctionDecl) DeclName() string { return f.Name }

// DeclLine implements Declaration.
func (f FunctionDecl) DeclLine() int { return f.Line }

func (FunctionDecl) declaration() {}

// Kind implements Declaration.
func (ClassDecl) Kind() DeclarationKind { return KindClass }

// DeclName implements Declaration.
func (c ClassDecl) DeclName() string { return c.Name }

// DeclLine implements Declaration.
func (c ClassDecl) DeclLine() int { return c.Line }

func (ClassDecl) declaration() {}

// Kind implements Declaration.
func (VariableDecl) Kind() DeclarationKind { return KindVariable }

// DeclName implements Declaration.
func (v VariableDecl) DeclName() string { return v.Name }

// DeclLine implements Declaration.
func (v VariableDecl) DeclLine() int { return v.Line }

func (VariableDecl) declaration() {}

// Inventory groups every declaration found in a text, in source order per kind.
type Inventory struct {
	Functions []FunctionDecl `json:"functions" yaml:"functions"`
	Classes   []ClassDecl    `json:"classes" yaml:"classes"`
	Variables []VariableDecl `json:"variables" yaml:"variables"`
}

// All returns every declaration ordered by line.
func (inv Inventory) All() []Declaration {
	all := make([]Declaration, 0, len(inv.Functions)+len(inv.Classes)+len(inv.Variables))

	for _, fn := range inv.Functions {
		all = append(all, fn)
	}

	for _, cls := range inv.Classes {
		all = append(all, cls)
	}

	for _, v := range inv.Variables {
		all = append(all, v)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DeclLine() < all[j].DeclLine()
	})

	return all
}
