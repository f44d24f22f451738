package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"autocomment.dev/pkg/autocomment/internal/adapter"
	"autocomment.dev/pkg/autocomment/internal/controller"
	m "autocomment.dev/pkg/autocomment/internal/model"
	"autocomment.dev/pkg/autocomment/pkg"
)

const diffContextLines = 2

// AnnotateArgs configures an annotate run.
type AnnotateArgs struct {
	Paths    []m.Path
	Exclude  []string
	Language m.Language // overrides the detected language when set
	UseCache bool
	Parallel int
	DryRun   bool
	Diff     bool
}

// ListArgs configures a list run.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Format  controller.OutputFormat
}

// ViewArgs selects the file shown by View.
type ViewArgs struct {
	Path     m.Path
	Language m.Language
}

// Workflow runs the CLI use cases on top of the adapters.
type Workflow interface {
	Annotate(ctx context.Context, args AnnotateArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	History(ctx context.Context) error
	Clean(ctx context.Context) error
}

// WorkflowOption customizes a Workflow.
type WorkflowOption func(*workflow)

// WithSpillDir sets the directory for the temporary per-file report spill.
func WithSpillDir(dir string) WorkflowOption {
	return func(w *workflow) {
		w.spillDir = dir
	}
}

// WithClock replaces time.Now for history timestamps.
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *workflow) {
		w.now = now
	}
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	files     adapter.FileManager
	history   adapter.HistoryStore
	ui        controller.UI
	commentor Commentor

	uiMu     sync.Mutex
	spillDir string
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	files adapter.FileManager,
	history adapter.HistoryStore,
	ui controller.UI,
	commentor Commentor,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		fs:        fs,
		files:     files,
		history:   history,
		ui:        ui,
		commentor: commentor,
		now:       time.Now,
	}

	for _, option := range options {
		option(w)
	}

	return w
}

func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	sources, err := w.fs.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	pending := sources
	if args.UseCache && !args.DryRun {
		pending, err = w.history.Changed(sources)
		if err != nil {
			return fmt.Errorf("check history: %w", err)
		}
	}

	if err := w.ui.Start(ctx, controller.WithAnnotateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	skipped := unchangedReports(sources, pending)
	w.ui.DisplayUpcoming(ctx, len(pending), len(skipped))

	for _, report := range skipped {
		w.ui.DisplayFileProcessed(ctx, report)
	}

	reports, err := w.annotateAll(ctx, pending, args)
	if err != nil {
		return err
	}

	reports = append(reports, skipped...)
	sort.Slice(reports, func(i, j int) bool {
		return sourceKey(reports[i].Source) < sourceKey(reports[j].Source)
	})

	w.ui.Close(ctx)

	if err := w.ui.DisplayStats(ctx, reports); err != nil {
		return fmt.Errorf("display stats: %w", err)
	}

	return failedReports(reports)
}

func (w *workflow) annotateAll(ctx context.Context, sources []m.Source, args AnnotateArgs) ([]m.FileReport, error) {
	spill, err := pkg.NewFileSpill[m.FileReport](w.spillDir)
	if err != nil {
		return nil, fmt.Errorf("create report spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("failed to close report spill", "error", err)
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for _, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report := w.annotateSource(groupCtx, source, args)

			w.uiMu.Lock()
			w.ui.DisplayFileProcessed(groupCtx, report)
			w.uiMu.Unlock()

			return spill.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	reports, err := spill.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect reports: %w", err)
	}

	return reports, nil
}

// unchangedReports returns a skipped report for every source not in pending.
func unchangedReports(sources, pending []m.Source) []m.FileReport {
	changed := make(map[m.Path]struct{}, len(pending))
	for _, source := range pending {
		changed[source.Origin.FullPath] = struct{}{}
	}

	reports := make([]m.FileReport, 0, len(sources)-len(pending))

	for _, source := range sources {
		if _, ok := changed[source.Origin.FullPath]; !ok {
			reports = append(reports, m.FileReport{Source: source, Skipped: true})
		}
	}

	return reports
}

// annotateSource never fails the run: problems are recorded on the report.
func (w *workflow) annotateSource(ctx context.Context, source m.Source, args AnnotateArgs) m.FileReport {
	report := m.FileReport{Source: source}

	content, err := w.fs.ReadFile(ctx, source.Origin.FullPath)
	if err != nil {
		return failReport(report, fmt.Errorf("read: %w", err))
	}

	language := source.Language
	if args.Language != "" {
		language = args.Language
	}

	result, err := w.commentor.Process(string(content), language)
	if err != nil {
		return failReport(report, err)
	}

	report.Stats = result.Stats

	if args.Diff {
		report.Diff, err = unifiedDiff(string(source.Origin.ShortPath), result.OriginalCode, result.CommentedCode)
		if err != nil {
			return failReport(report, fmt.Errorf("diff: %w", err))
		}
	}

	if args.DryRun {
		return report
	}

	saved, err := w.files.SaveCommentedFile(ctx, string(source.Origin.ShortPath), result.CommentedCode)
	if err != nil {
		return failReport(report, err)
	}

	report.Saved = &saved

	err = w.history.Put(m.HistoryRecord{
		Path:        source.Origin.FullPath,
		Hash:        source.Origin.Hash,
		Stats:       result.Stats,
		Output:      string(saved.FilePath),
		ProcessedAt: w.now(),
	})
	if err != nil {
		slog.Error("failed to record history", "path", source.Origin.FullPath, "error", err)
	}

	return report
}

func failReport(report m.FileReport, err error) m.FileReport {
	slog.Error("annotate failed", "path", sourceKey(report.Source), "error", err)
	report.ErrorText = err.Error()

	return report
}

func failedReports(reports []m.FileReport) error {
	var errs []error

	for _, report := range reports {
		if report.ErrorText != "" {
			errs = append(errs, fmt.Errorf("%s: %s", sourceKey(report.Source), report.ErrorText))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%d file(s) failed: %w", len(errs), errors.Join(errs...))
}

func sourceKey(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return string(source.Origin.ShortPath)
}

func unifiedDiff(path, original, annotated string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(annotated),
		FromFile: path,
		ToFile:   path + " (annotated)",
		Context:  diffContextLines,
	})
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	sources, err := w.fs.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	entries := make([]m.InventoryEntry, 0, len(sources))

	for _, source := range sources {
		content, err := w.fs.ReadFile(ctx, source.Origin.FullPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", source.Origin.ShortPath, err)
		}

		entries = append(entries, m.InventoryEntry{
			Path:       source.Origin.ShortPath,
			Structures: Scan(string(content)),
		})
	}

	return w.ui.DisplayInventories(ctx, entries, args.Format)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	content, err := w.fs.ReadFile(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	result, err := w.commentor.Process(string(content), args.Language)
	if err != nil {
		return err
	}

	return w.ui.DisplayAnnotated(ctx, args.Path, result)
}

func (w *workflow) History(ctx context.Context) error {
	records, err := w.history.List()
	if err != nil {
		return err
	}

	return w.ui.DisplayHistory(ctx, records)
}

func (w *workflow) Clean(ctx context.Context) error {
	removed, err := w.files.CleanupUploads(ctx)
	if err != nil {
		return fmt.Errorf("clean uploads: %w", err)
	}

	w.ui.DisplayCleanup(ctx, removed)

	return nil
}
