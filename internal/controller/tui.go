package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

const (
	pagerChromeLines = 2
	progressWidth    = 40
)

var (
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI is the interactive-terminal UI: a progress bar while annotating and a
// scrollable pager for view. Everything else falls through to SimpleUI.
type TUI struct {
	*SimpleUI

	bar *progressbar.ProgressBar
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayUpcoming starts the progress bar in annotate mode.
func (t *TUI) DisplayUpcoming(ctx context.Context, total int, skipped int) {
	if ctx.Err() != nil {
		return
	}

	if t.config.mode != ModeAnnotate || total == 0 {
		t.SimpleUI.DisplayUpcoming(ctx, total, skipped)
		return
	}

	description := "[cyan]Annotating[reset]"
	if skipped > 0 {
		description = fmt.Sprintf("[cyan]Annotating[reset] (%d unchanged)", skipped)
	}

	t.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(t.cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(progressWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)
}

// DisplayFileProcessed advances the progress bar. Diffs and failures are still
// printed in full. Unchanged files are not part of the bar.
func (t *TUI) DisplayFileProcessed(ctx context.Context, report m.FileReport) {
	if t.bar == nil {
		t.SimpleUI.DisplayFileProcessed(ctx, report)
		return
	}

	if ctx.Err() != nil || report.Skipped {
		return
	}

	if report.Diff != "" || report.ErrorText != "" {
		_ = t.bar.Clear()
		t.SimpleUI.DisplayFileProcessed(ctx, report)
	}

	_ = t.bar.Add(1)
}

// Close finishes the progress bar.
func (t *TUI) Close(ctx context.Context) {
	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}

	t.SimpleUI.Close(ctx)
}

// DisplayAnnotated opens a pager when the text does not fit the terminal.
func (t *TUI) DisplayAnnotated(ctx context.Context, path m.Path, result m.ProcessingResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := t.cmd.OutOrStdout()
	title := titleStyle.Render(fmt.Sprintf("%s: %d comment(s) added", path, result.Stats.CommentsAdded))
	content := highlightComments(result)

	_, height := terminalSize(out)
	if height == 0 || strings.Count(content, "\n")+1+pagerChromeLines <= height {
		_, err := fmt.Fprintf(out, "%s\n%s\n", title, content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// highlightComments renders the annotated text with inserted comment lines styled.
func highlightComments(result m.ProcessingResult) string {
	original := strings.Count(result.OriginalCode, "\n") + 1
	inserted := insertedLines(original, result.Comments)
	lines := strings.Split(result.CommentedCode, "\n")

	for i, line := range lines {
		if inserted[i] {
			lines[i] = commentStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// insertedLines returns the output indexes occupied by comments when they are
// inserted before their 1-based target lines in a text of originalLines lines.
func insertedLines(originalLines int, comments []m.Comment) map[int]bool {
	perIndex := make(map[int]int, len(comments))
	for _, comment := range comments {
		perIndex[min(max(comment.Line-1, 0), originalLines)]++
	}

	marks := make(map[int]bool, len(comments))
	shift := 0

	for index := 0; index <= originalLines; index++ {
		for range perIndex[index] {
			marks[index+shift] = true
			shift++
		}
	}

	return marks
}

// pagerModel is a read-only viewport over the annotated text.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChromeLines, 1)
		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	footer := helpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", p.viewport.ScrollPercent()*100))

	return p.title + "\n" + p.viewport.View() + "\n" + footer
}
