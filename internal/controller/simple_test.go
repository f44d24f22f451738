package controller

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

func reportFor(path string, stats m.Stats) m.FileReport {
	return m.FileReport{
		Source: m.Source{Origin: &m.File{ShortPath: m.Path(path)}},
		Stats:  stats,
	}
}

func sampleEntries() []m.InventoryEntry {
	return []m.InventoryEntry{{
		Path: "src/app.js",
		Structures: m.Inventory{
			Functions: []m.FunctionDecl{{Name: "area", Line: 4, Parameters: []string{"shape"}}},
			Classes:   []m.ClassDecl{{Name: "Shape", Line: 1}},
			Variables: []m.VariableDecl{{Name: "total", Line: 9, Binding: m.BindingLet}},
		},
	}}
}

func TestFileStatusLine(t *testing.T) {
	saved := reportFor("a.js", m.Stats{CommentsAdded: 2})
	saved.Saved = &m.SavedFile{FilePath: "commented/a_commented.js"}

	failed := reportFor("b.js", m.Stats{})
	failed.ErrorText = "read: denied"

	skipped := reportFor("c.js", m.Stats{})
	skipped.Skipped = true

	tests := []struct {
		name   string
		report m.FileReport
		want   string
	}{
		{"saved", saved, "annotated a.js -> commented/a_commented.js (2 comments)"},
		{"dry run", reportFor("d.js", m.Stats{CommentsAdded: 1}), "annotated d.js (1 comments)"},
		{"failed", failed, "failed b.js: read: denied"},
		{"skipped", skipped, "unchanged c.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileStatusLine(tt.report))
		})
	}
}

func TestSimpleUI_AnnotateFlow(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithAnnotateMode()))
	ui.DisplayUpcoming(ctx, 2, 1)

	withDiff := reportFor("a.js", m.Stats{Functions: 1, CommentsAdded: 1})
	withDiff.Diff = "--- a.js\n+++ a.js (annotated)\n"
	ui.DisplayFileProcessed(ctx, withDiff)

	other := reportFor("b.js", m.Stats{Variables: 2, CommentsAdded: 2})
	ui.DisplayFileProcessed(ctx, other)
	ui.Close(ctx)

	unchanged := reportFor("d.js", m.Stats{Functions: 5})
	unchanged.Skipped = true
	ui.DisplayFileProcessed(ctx, unchanged)

	failed := reportFor("c.js", m.Stats{Functions: 9})
	failed.ErrorText = "boom"

	require.NoError(t, ui.DisplayStats(ctx, []m.FileReport{withDiff, other, failed, unchanged}))

	output := out.String()
	assert.Contains(t, output, "Annotating 2 file(s), 1 unchanged")
	assert.Contains(t, output, "annotated a.js (1 comments)")
	assert.Contains(t, output, "+++ a.js (annotated)")
	assert.Contains(t, output, "annotated b.js (2 comments)")
	assert.Contains(t, output, "unchanged d.js")
	assert.Equal(t, 1, strings.Count(output, "d.js"))
	assert.Contains(t, strings.ToUpper(output), "TOTAL FILES 2")
	assert.NotContains(t, output, "c.js")
}

func TestSimpleUI_DisplayUpcomingWithoutSkipped(t *testing.T) {
	cmd, out, _ := newTestCommand()

	NewSimpleUI(cmd).DisplayUpcoming(context.Background(), 3, 0)

	assert.Equal(t, "Annotating 3 file(s)\n", out.String())
}

func TestRenderStatsTable(t *testing.T) {
	table := renderStatsTable([]m.FileReport{
		reportFor("a.js", m.Stats{Functions: 1, Classes: 2, Variables: 3, CommentsAdded: 4}),
		reportFor("b.js", m.Stats{Functions: 1, CommentsAdded: 1}),
	})

	assert.Contains(t, table, "a.js")
	assert.Contains(t, table, "b.js")

	footer := strings.ToUpper(table)
	assert.Contains(t, footer, "TOTAL FILES 2")
	assert.Contains(t, footer, "PATH")
	assert.Contains(t, footer, "COMMENTS")
}

func TestWriteInventories(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		cmd, out, _ := newTestCommand()

		require.NoError(t, NewSimpleUI(cmd).DisplayInventories(context.Background(), sampleEntries(), FormatTable))

		output := out.String()
		assert.Contains(t, output, "src/app.js")
		assert.Contains(t, output, "Shape")
		assert.Contains(t, output, "function")
		assert.Contains(t, strings.ToUpper(output), "TOTAL FILES 1")
		assert.Less(t, strings.Index(output, "Shape"), strings.Index(output, "area"))
		assert.Less(t, strings.Index(output, "area"), strings.Index(output, "total"))
	})

	t.Run("json", func(t *testing.T) {
		cmd, out, _ := newTestCommand()

		require.NoError(t, NewSimpleUI(cmd).DisplayInventories(context.Background(), sampleEntries(), FormatJSON))

		var decoded []m.InventoryEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, m.Path("src/app.js"), decoded[0].Path)
		assert.Equal(t, "area", decoded[0].Structures.Functions[0].Name)
		assert.Contains(t, out.String(), `"params": [`)
	})

	t.Run("yaml", func(t *testing.T) {
		cmd, out, _ := newTestCommand()

		require.NoError(t, NewSimpleUI(cmd).DisplayInventories(context.Background(), sampleEntries(), FormatYAML))

		output := out.String()
		assert.Contains(t, output, "- path: src/app.js")
		assert.Contains(t, output, "functions:")
		assert.Contains(t, output, "name: Shape")
		assert.Contains(t, output, "type: let")
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd, _, _ := newTestCommand()

		require.Error(t, NewSimpleUI(cmd).DisplayInventories(context.Background(), sampleEntries(), "xml"))
	})
}

func TestSimpleUI_DisplayAnnotated(t *testing.T) {
	cmd, out, _ := newTestCommand()

	err := NewSimpleUI(cmd).DisplayAnnotated(context.Background(), "app.js", m.ProcessingResult{
		CommentedCode: "// Class Shape defined\nclass Shape {}",
		Stats:         m.Stats{CommentsAdded: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "// app.js: 1 comment(s) added\n// Class Shape defined\nclass Shape {}\n", out.String())
}

func TestSimpleUI_DisplayHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cmd, out, _ := newTestCommand()

		require.NoError(t, NewSimpleUI(cmd).DisplayHistory(context.Background(), nil))
		assert.Equal(t, "No runs recorded yet.\n", out.String())
	})

	t.Run("records", func(t *testing.T) {
		cmd, out, _ := newTestCommand()

		records := []m.HistoryRecord{{
			Path:        "/repo/app.js",
			Stats:       m.Stats{CommentsAdded: 7},
			Output:      "commented/app_commented.js",
			ProcessedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}}

		require.NoError(t, NewSimpleUI(cmd).DisplayHistory(context.Background(), records))

		output := out.String()
		assert.Contains(t, output, "/repo/app.js")
		assert.Contains(t, output, "commented/app_commented.js")
		assert.Contains(t, output, "7")
		assert.Contains(t, output, records[0].ProcessedAt.Local().Format(time.DateTime))
	})
}

func TestSimpleUI_DisplayCleanup(t *testing.T) {
	cmd, out, _ := newTestCommand()

	NewSimpleUI(cmd).DisplayCleanup(context.Background(), 4)

	assert.Equal(t, "Removed 4 upload(s)\n", out.String())
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayUpcoming(ctx, 1, 0)
	ui.DisplayFileProcessed(ctx, reportFor("a.js", m.Stats{}))
	ui.DisplayCleanup(ctx, 1)
	require.ErrorIs(t, ui.DisplayStats(ctx, nil), context.Canceled)

	assert.Empty(t, out.String())
}
