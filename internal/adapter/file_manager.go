package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

const (
	// DefaultUploadDir holds raw uploads awaiting annotation.
	DefaultUploadDir = "uploads"
	// DefaultCommentedDir holds annotated output files.
	DefaultCommentedDir = "commented"

	commentedSuffix  = "_commented_"
	commentedExt     = ".js"
	timestampLayout  = "2006-01-02T15:04:05.000Z"
	storedFileMode   = 0o600
	relativeDirLabel = "commented"
)

// FileManager persists uploads and annotated output.
type FileManager interface {
	EnsureDirectories(ctx context.Context) error
	SaveUploadedFile(ctx context.Context, name string, content []byte) (m.Path, error)
	ReadFile(ctx context.Context, path m.Path) (string, error)
	SaveCommentedFile(ctx context.Context, originalName, content string) (m.SavedFile, error)
	ListCommentedFiles(ctx context.Context) ([]string, error)
	CleanupUploads(ctx context.Context) (int, error)
}

// LocalFileManager is a FileManager on top of a SourceFSAdapter.
type LocalFileManager struct {
	fs           SourceFSAdapter
	uploadDir    m.Path
	commentedDir m.Path
	now          func() time.Time

	// mu serializes name selection and the write that claims the name.
	mu sync.Mutex
}

// NewLocalFileManager creates a LocalFileManager. Empty directories fall back
// to DefaultUploadDir and DefaultCommentedDir.
func NewLocalFileManager(fs SourceFSAdapter, uploadDir, commentedDir m.Path) *LocalFileManager {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}

	if commentedDir == "" {
		commentedDir = DefaultCommentedDir
	}

	return &LocalFileManager{
		fs:           fs,
		uploadDir:    uploadDir,
		commentedDir: commentedDir,
		now:          time.Now,
	}
}

// EnsureDirectories creates the upload and commented directories.
func (f *LocalFileManager) EnsureDirectories(ctx context.Context) error {
	for _, dir := range []m.Path{f.uploadDir, f.commentedDir} {
		if err := f.fs.MkdirAll(ctx, dir); err != nil {
			slog.Error("failed to create directory", "dir", dir, "error", err)
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	slog.Debug("storage directories ready", "uploads", f.uploadDir, "commented", f.commentedDir)

	return nil
}

// SaveUploadedFile stores content under the upload directory using the base
// name of name.
func (f *LocalFileManager) SaveUploadedFile(ctx context.Context, name string, content []byte) (m.Path, error) {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid upload name %q", name)
	}

	if err := f.fs.MkdirAll(ctx, f.uploadDir); err != nil {
		return "", fmt.Errorf("create %s: %w", f.uploadDir, err)
	}

	path := f.fs.JoinPath(string(f.uploadDir), base)
	if err := f.fs.WriteFile(ctx, path, content, storedFileMode); err != nil {
		slog.Error("failed to save upload", "path", path, "error", err)
		return "", fmt.Errorf("save upload: %w", err)
	}

	return path, nil
}

// ReadFile returns the contents of path as text.
func (f *LocalFileManager) ReadFile(ctx context.Context, path m.Path) (string, error) {
	content, err := f.fs.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(content), nil
}

// SaveCommentedFile writes content to <commented>/<stem>_commented_<timestamp>.js.
// When that name is already taken a -1, -2, ... suffix is added before the
// extension, so an existing file is never replaced.
func (f *LocalFileManager) SaveCommentedFile(ctx context.Context, originalName, content string) (m.SavedFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fs.MkdirAll(ctx, f.commentedDir); err != nil {
		return m.SavedFile{}, fmt.Errorf("create %s: %w", f.commentedDir, err)
	}

	existing, err := f.fs.ListFiles(ctx, f.commentedDir)
	if err != nil {
		return m.SavedFile{}, fmt.Errorf("list %s: %w", f.commentedDir, err)
	}

	filename := uniqueName(f.commentedName(originalName), existing)

	path := f.fs.JoinPath(string(f.commentedDir), filename)
	if err := f.fs.WriteFile(ctx, path, []byte(content), storedFileMode); err != nil {
		slog.Error("failed to save commented file", "path", path, "error", err)
		return m.SavedFile{}, fmt.Errorf("save commented file: %w", err)
	}

	slog.Info("saved commented file", "path", path)

	return m.SavedFile{
		Filename:     filename,
		FilePath:     path,
		RelativePath: relativeDirLabel + "/" + filename,
	}, nil
}

func (f *LocalFileManager) commentedName(originalName string) string {
	base := filepath.Base(originalName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	timestamp := strings.NewReplacer(":", "-", ".", "-").Replace(f.now().UTC().Format(timestampLayout))

	return stem + commentedSuffix + timestamp + commentedExt
}

func uniqueName(name string, existing []string) string {
	if !slices.Contains(existing, name) {
		return name
	}

	stem := strings.TrimSuffix(name, commentedExt)

	for n := 1; ; n++ {
		candidate := stem + "-" + strconv.Itoa(n) + commentedExt
		if !slices.Contains(existing, candidate) {
			return candidate
		}
	}
}

// ListCommentedFiles returns the annotated files, or an empty list when the
// directory does not exist yet.
func (f *LocalFileManager) ListCommentedFiles(ctx context.Context) ([]string, error) {
	names, err := f.fs.ListFiles(ctx, f.commentedDir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		slog.Debug("commented directory not readable", "dir", f.commentedDir, "error", err)

		return []string{}, nil
	}

	files := make([]string, 0, len(names))

	for _, name := range names {
		if strings.HasSuffix(name, commentedExt) {
			files = append(files, name)
		}
	}

	return files, nil
}

// CleanupUploads removes every file in the upload directory and returns how
// many were deleted. Individual failures are logged and skipped.
func (f *LocalFileManager) CleanupUploads(ctx context.Context) (int, error) {
	names, err := f.fs.ListFiles(ctx, f.uploadDir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}

		slog.Info("nothing to clean", "dir", f.uploadDir, "error", err)

		return 0, nil
	}

	removed := 0

	for _, name := range names {
		path := f.fs.JoinPath(string(f.uploadDir), name)
		if err := f.fs.Remove(ctx, path); err != nil {
			slog.Error("cleanup failed", "path", path, "error", err)
			continue
		}

		removed++
	}

	return removed, nil
}
