package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

func TestInsertedLines(t *testing.T) {
	tests := []struct {
		name     string
		original int
		comments []m.Comment
		want     map[int]bool
	}{
		{"none", 3, nil, map[int]bool{}},
		{"first and last", 3, []m.Comment{{Line: 3}, {Line: 1}}, map[int]bool{0: true, 3: true}},
		{"adjacent", 3, []m.Comment{{Line: 1}, {Line: 2}}, map[int]bool{0: true, 2: true}},
		{"same target", 3, []m.Comment{{Line: 2}, {Line: 2}}, map[int]bool{1: true, 2: true}},
		{"past the end", 2, []m.Comment{{Line: 9}}, map[int]bool{2: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertedLines(tt.original, tt.comments))
		})
	}
}

func TestHighlightComments_KeepsText(t *testing.T) {
	result := m.ProcessingResult{
		OriginalCode:  "class Shape {}\nlet total = 1;",
		CommentedCode: "// Class Shape defined\nclass Shape {}\nlet total = 1;",
		Comments:      []m.Comment{{Line: 1, Text: "// Class Shape defined"}},
	}

	highlighted := highlightComments(result)
	lines := strings.Split(highlighted, "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "// Class Shape defined")
	assert.Equal(t, "class Shape {}", lines[1])
	assert.Equal(t, "let total = 1;", lines[2])
}

func TestTUI_ProgressFlow(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewTUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithAnnotateMode()))
	ui.DisplayUpcoming(ctx, 2, 1)
	require.NotNil(t, ui.bar)

	unchanged := reportFor("cached.js", m.Stats{})
	unchanged.Skipped = true
	ui.DisplayFileProcessed(ctx, unchanged)

	ui.DisplayFileProcessed(ctx, reportFor("quiet.js", m.Stats{}))

	noisy := reportFor("noisy.js", m.Stats{})
	noisy.Diff = "+// added"
	ui.DisplayFileProcessed(ctx, noisy)

	ui.Close(ctx)
	assert.Nil(t, ui.bar)

	assert.NotContains(t, out.String(), "quiet.js")
	assert.NotContains(t, out.String(), "cached.js")
	assert.Contains(t, out.String(), "annotated noisy.js")
	assert.Contains(t, out.String(), "+// added")
	assert.NotEmpty(t, errOut.String())
}

func TestTUI_ListModeFallsBackToText(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewTUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithListMode()))
	ui.DisplayUpcoming(ctx, 2, 0)
	assert.Nil(t, ui.bar)

	ui.DisplayFileProcessed(ctx, reportFor("a.js", m.Stats{}))
	assert.Contains(t, out.String(), "Annotating 2 file(s)")
	assert.Contains(t, out.String(), "annotated a.js")
}

func TestTUI_DisplayAnnotatedPrintsWithoutTerminal(t *testing.T) {
	cmd, out, _ := newTestCommand()

	err := NewTUI(cmd).DisplayAnnotated(context.Background(), "app.js", m.ProcessingResult{
		OriginalCode:  "class Shape {}",
		CommentedCode: "// Class Shape defined\nclass Shape {}",
		Comments:      []m.Comment{{Line: 1}},
		Stats:         m.Stats{CommentsAdded: 1},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "app.js: 1 comment(s) added")
	assert.Contains(t, out.String(), "class Shape {}")
}

func TestPagerModel(t *testing.T) {
	model := newPagerModel("title", "line 1\nline 2\nline 3")

	assert.Nil(t, model.Init())
	assert.Equal(t, "loading...", model.View())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	pager, ok := updated.(pagerModel)
	require.True(t, ok)
	require.True(t, pager.ready)

	view := pager.View()
	assert.True(t, strings.HasPrefix(view, "title\n"))
	assert.Contains(t, view, "line 2")
	assert.Contains(t, view, "q quit")

	resized, _ := pager.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 18, resized.(pagerModel).viewport.Height)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := pager.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
