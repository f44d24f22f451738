// Package domain contains the annotation pipeline and the workflows built on it.
package domain

import (
	"log/slog"
	"slices"
	"strings"

	"autocomment.dev/pkg/autocomment/internal/domain/synthesizers"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

// DefaultLanguages is the language set a Commentor accepts when none is configured.
var DefaultLanguages = []m.Language{m.LanguageJavaScript, m.LanguageJS}

// Commentor annotates source text with synthesized comments.
type Commentor interface {
	// Process recognizes declarations in source, synthesizes comments for the
	// noteworthy ones and returns the annotated text. An empty language means
	// JavaScript.
	Process(source string, language m.Language) (m.ProcessingResult, error)
	SupportedLanguages() []m.Language
}

// commentor is stateless apart from its read-only language set.
type commentor struct {
	languages []m.Language
}

// NewCommentor creates a Commentor accepting the given languages, or
// DefaultLanguages when none are given.
func NewCommentor(languages ...m.Language) Commentor {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	normalized := make([]m.Language, 0, len(languages))
	for _, lang := range languages {
		normalized = append(normalized, lang.Normalize())
	}

	return &commentor{languages: normalized}
}

func (c *commentor) SupportedLanguages() []m.Language {
	return slices.Clone(c.languages)
}

func (c *commentor) Process(source string, language m.Language) (m.ProcessingResult, error) {
	if err := c.validateLanguage(language); err != nil {
		return m.ProcessingResult{}, err
	}

	structures := Scan(source)
	slog.Debug("parsed source",
		"functions", len(structures.Functions),
		"classes", len(structures.Classes),
		"variables", len(structures.Variables),
	)

	comments := synthesizers.Synthesize(structures)
	commented := strings.Join(Reconcile(SplitLines(source), comments), "\n")

	return m.ProcessingResult{
		OriginalCode:  source,
		CommentedCode: commented,
		Structures:    structures,
		Comments:      comments,
		Stats: m.Stats{
			Functions:     len(structures.Functions),
			Classes:       len(structures.Classes),
			Variables:     len(structures.Variables),
			CommentsAdded: len(comments),
		},
	}, nil
}

func (c *commentor) validateLanguage(language m.Language) error {
	if slices.Contains(c.languages, language.Normalize()) {
		return nil
	}

	return &UnsupportedLanguageError{
		Requested: language,
		Supported: c.SupportedLanguages(),
	}
}
