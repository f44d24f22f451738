// Package controller renders annotate, list, view and history output.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// OutputFormat selects how inventories are rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
	FormatJSON  OutputFormat = "json"
)

// ParseOutputFormat validates a --format value. Empty means table.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, yaml or json)", value)
	}
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeAnnotate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to inventory listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithAnnotateMode sets the UI to annotation mode.
func WithAnnotateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnnotate
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeList}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI displays workflow progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayUpcoming(ctx context.Context, total int, skipped int)
	DisplayFileProcessed(ctx context.Context, report m.FileReport)
	DisplayStats(ctx context.Context, reports []m.FileReport) error
	DisplayInventories(ctx context.Context, entries []m.InventoryEntry, format OutputFormat) error
	DisplayAnnotated(ctx context.Context, path m.Path, result m.ProcessingResult) error
	DisplayHistory(ctx context.Context, records []m.HistoryRecord) error
	DisplayCleanup(ctx context.Context, removed int)
}

// NewUI returns a TUI when output is an interactive terminal, otherwise a SimpleUI.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
