package domain

import (
	"fmt"
	"strings"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// UnsupportedLanguageError is returned when a caller requests a language
// outside the commentor's supported set.
type UnsupportedLanguageError struct {
	Requested m.Language
	Supported []m.Language
}

func (e *UnsupportedLanguageError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, lang := range e.Supported {
		names = append(names, string(lang))
	}

	return fmt.Sprintf("unsupported language: %s. Supported: %s", e.Requested, strings.Join(names, ", "))
}
