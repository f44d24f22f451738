package domain

import (
	"regexp"
	"strings"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

const (
	functionKeyword = "function "
	classKeyword    = "class "
	constKeyword    = "const "
	letKeyword      = "let "
	arrowToken      = "=>"
	functionToken   = "function"
)

var (
	arrowBindingPattern    = regexp.MustCompile(`const\s+\w+\s*=\s*\(.*\)\s*=>`)
	functionBindingPattern = regexp.MustCompile(`const\s+\w+\s*=\s*function`)
	arrowNamePattern       = regexp.MustCompile(`const\s+(\w+)\s*=\s*\(`)
	functionNamePattern    = regexp.MustCompile(`const\s+(\w+)\s*=\s*function`)
	parameterPattern       = regexp.MustCompile(`\((.*?)\)`)
)

// lineTag is the tag assigned to a single trimmed line.
type lineTag int

const (
	lineUnclassified lineTag = iota
	lineFunction
	lineClassDecl
	lineVariable
)

// classifyLine tags a trimmed line. Rules are checked in priority order and
// the first match wins.
func classifyLine(line string) lineTag {
	switch {
	case strings.HasPrefix(line, functionKeyword),
		arrowBindingPattern.MatchString(line),
		functionBindingPattern.MatchString(line):
		return lineFunction
	case strings.HasPrefix(line, classKeyword):
		return lineClassDecl
	case (strings.HasPrefix(line, constKeyword) || strings.HasPrefix(line, letKeyword)) &&
		!strings.Contains(line, functionToken) && !strings.Contains(line, arrowToken):
		return lineVariable
	default:
		return lineUnclassified
	}
}

// SplitLines splits text into physical lines on "\n".
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Scan classifies every line of text and extracts one declaration per
// recognized line. Line numbers are 1-based positions in text.
func Scan(text string) m.Inventory {
	lines := SplitLines(text)
	inventory := m.Inventory{
		Functions: []m.FunctionDecl{},
		Classes:   []m.ClassDecl{},
		Variables: []m.VariableDecl{},
	}

	for index, raw := range lines {
		line := strings.TrimSpace(raw)
		lineNumber := index + 1

		switch classifyLine(line) {
		case lineFunction:
			fn := extractFunction(line, lineNumber)
			fn.Body = functionBody(lines, index)
			inventory.Functions = append(inventory.Functions, fn)
		case lineClassDecl:
			inventory.Classes = append(inventory.Classes, extractClass(line, lineNumber))
		case lineVariable:
			inventory.Variables = append(inventory.Variables, extractVariable(line, lineNumber))
		case lineUnclassified:
		}
	}

	return inventory
}

func extractFunction(line string, lineNumber int) m.FunctionDecl {
	name := extractFunctionName(line)

	return m.FunctionDecl{
		Name:        name,
		Line:        lineNumber,
		RawText:     line,
		Parameters:  extractParameters(line),
		IsArrow:     strings.Contains(line, arrowToken),
		IsAnonymous: name == m.AnonymousName,
	}
}

func extractFunctionName(line string) string {
	name := ""

	switch {
	case strings.HasPrefix(line, functionKeyword):
		rest := strings.TrimPrefix(line, functionKeyword)
		name, _, _ = strings.Cut(rest, "(")
		name = strings.TrimSpace(name)
	case arrowNamePattern.MatchString(line):
		name = arrowNamePattern.FindStringSubmatch(line)[1]
	case functionNamePattern.MatchString(line):
		name = functionNamePattern.FindStringSubmatch(line)[1]
	}

	if name == "" {
		return m.AnonymousName
	}

	return name
}

func extractParameters(line string) []string {
	match := parameterPattern.FindStringSubmatch(line)
	if match == nil || match[1] == "" {
		return []string{}
	}

	params := make([]string, 0)

	for _, param := range strings.Split(match[1], ",") {
		param = strings.TrimSpace(param)
		if param != "" {
			params = append(params, param)
		}
	}

	return params
}

// functionBody returns the lines after lines[start] up to the line where the
// brace depth opened on lines[start] returns to zero. Braces inside strings
// and comments are counted like any other.
func functionBody(lines []string, start int) []string {
	depth, opened := braceDelta(lines[start], 0, false)
	if !opened || depth <= 0 {
		return nil
	}

	for end := start + 1; end < len(lines); end++ {
		depth, _ = braceDelta(lines[end], depth, true)
		if depth <= 0 {
			return lines[start+1 : end+1]
		}
	}

	return lines[start+1:]
}

func braceDelta(line string, depth int, opened bool) (int, bool) {
	for _, r := range line {
		switch r {
		case '{':
			depth++
			opened = true
		case '}':
			if opened {
				depth--
			}
		}
	}

	return depth, opened
}

func extractClass(line string, lineNumber int) m.ClassDecl {
	name := strings.TrimPrefix(line, classKeyword)
	name, _, _ = strings.Cut(name, " ")
	name, _, _ = strings.Cut(name, "{")

	return m.ClassDecl{
		Name:    name,
		Line:    lineNumber,
		RawText: line,
	}
}

func extractVariable(line string, lineNumber int) m.VariableDecl {
	binding := m.BindingLet
	rest := strings.TrimPrefix(line, letKeyword)

	if strings.HasPrefix(line, constKeyword) {
		binding = m.BindingConst
		rest = strings.TrimPrefix(line, constKeyword)
	}

	token, _, _ := strings.Cut(rest, " ")
	name, _, _ := strings.Cut(token, "=")

	return m.VariableDecl{
		Name:    strings.TrimSpace(name),
		Line:    lineNumber,
		RawText: line,
		Binding: binding,
	}
}
