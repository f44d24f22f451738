// Package model defines the data structures shared by the annotation pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// Language identifies the source language requested by a caller.
type Language string

const (
	// LanguageJavaScript is the canonical language name.
	LanguageJavaScript Language = "javascript"
	// LanguageJS is the short alias accepted for JavaScript.
	LanguageJS Language = "js"
)

// Normalize lower-cases the language and maps an empty value to JavaScript.
func (l Language) Normalize() Language {
	normalized := Language(strings.ToLower(string(l)))
	if normalized == "" {
		return LanguageJavaScript
	}

	return normalized
}

// File represents a source code file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a discovered file queued for annotation.
type Source struct {
	Origin   *File
	Language Language
}
