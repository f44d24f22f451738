package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

const historyTimeLayout = time.DateTime

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayUpcoming prints how many files will be annotated.
func (s *SimpleUI) DisplayUpcoming(ctx context.Context, total int, skipped int) {
	if ctx.Err() != nil {
		return
	}

	if skipped > 0 {
		s.printf("Annotating %d file(s), %d unchanged\n", total, skipped)
		return
	}

	s.printf("Annotating %d file(s)\n", total)
}

// DisplayFileProcessed prints one line per file and its diff when present.
func (s *SimpleUI) DisplayFileProcessed(ctx context.Context, report m.FileReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", fileStatusLine(report))

	if report.Diff != "" {
		s.printf("%s\n", report.Diff)
	}
}

func fileStatusLine(report m.FileReport) string {
	path := sourcePath(report.Source)

	switch {
	case report.ErrorText != "":
		return fmt.Sprintf("failed %s: %s", path, report.ErrorText)
	case report.Skipped:
		return "unchanged " + path
	case report.Saved != nil:
		return fmt.Sprintf("annotated %s -> %s (%d comments)", path, report.Saved.FilePath, report.Stats.CommentsAdded)
	default:
		return fmt.Sprintf("annotated %s (%d comments)", path, report.Stats.CommentsAdded)
	}
}

func sourcePath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return string(source.Origin.ShortPath)
}

// DisplayStats prints the per-file stats table.
func (s *SimpleUI) DisplayStats(ctx context.Context, reports []m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderStatsTable(reports))

	return nil
}

func renderStatsTable(reports []m.FileReport) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Path", "Functions", "Classes", "Variables", "Comments"})

	var total m.Stats

	files := 0

	for _, report := range reports {
		if report.Skipped || report.ErrorText != "" {
			continue
		}

		table.Append([]string{
			sourcePath(report.Source),
			strconv.Itoa(report.Stats.Functions),
			strconv.Itoa(report.Stats.Classes),
			strconv.Itoa(report.Stats.Variables),
			strconv.Itoa(report.Stats.CommentsAdded),
		})

		total = total.Add(report.Stats)
		files++
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files),
		strconv.Itoa(total.Functions),
		strconv.Itoa(total.Classes),
		strconv.Itoa(total.Variables),
		strconv.Itoa(total.CommentsAdded),
	})
	table.Render()

	return buffer.String()
}

// DisplayInventories renders the declarations found per file.
func (s *SimpleUI) DisplayInventories(ctx context.Context, entries []m.InventoryEntry, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeInventories(s.cmd.OutOrStdout(), entries, format)
}

func writeInventories(w io.Writer, entries []m.InventoryEntry, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(entries)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	case FormatTable:
		_, err := io.WriteString(w, renderInventoryTable(entries))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderInventoryTable(entries []m.InventoryEntry) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Path", "Line", "Kind", "Name"})
	declarations := 0

	for _, entry := range entries {
		for _, decl := range entry.Structures.All() {
			table.Append([]string{
				string(entry.Path),
				strconv.Itoa(decl.DeclLine()),
				string(decl.Kind()),
				decl.DeclName(),
			})

			declarations++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(entries)), "", "", strconv.Itoa(declarations)})
	table.Render()

	return buffer.String()
}

// DisplayAnnotated prints the annotated text.
func (s *SimpleUI) DisplayAnnotated(ctx context.Context, path m.Path, result m.ProcessingResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("// %s: %d comment(s) added\n%s\n", path, result.Stats.CommentsAdded, result.CommentedCode)

	return nil
}

// DisplayHistory prints the recorded runs.
func (s *SimpleUI) DisplayHistory(ctx context.Context, records []m.HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(records) == 0 {
		s.printf("No runs recorded yet.\n")
		return nil
	}

	s.printf("%s", renderHistoryTable(records))

	return nil
}

func renderHistoryTable(records []m.HistoryRecord) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Path", "Processed", "Comments", "Output"})

	for _, record := range records {
		table.Append([]string{
			string(record.Path),
			record.ProcessedAt.Local().Format(historyTimeLayout),
			strconv.Itoa(record.Stats.CommentsAdded),
			record.Output,
		})
	}

	table.Render()

	return buffer.String()
}

// DisplayCleanup reports how many uploads were removed.
func (s *SimpleUI) DisplayCleanup(ctx context.Context, removed int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Removed %d upload(s)\n", removed)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_CENTER
	}

	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)

	return table
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
