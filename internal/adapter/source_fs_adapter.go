// Package adapter contains the storage and filesystem adapters used by the
// annotation workflows.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// DefaultIncludes selects the files annotate and list pick up.
var DefaultIncludes = []string{"**/*.js", "**/*.mjs", "**/*.cjs"}

// DefaultExcludes skips dependency and build output trees.
var DefaultExcludes = []string{"**/node_modules/**", "**/dist/**", "**/*.min.js", "**/.git/**"}

const recursiveSuffix = "/..."

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on. It hides direct `os` access so the workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns (./..., dirs, files) into sources.
	// Exclude entries are doublestar patterns matched against paths relative
	// to each root.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// ListFiles returns the names of regular files directly under dir, sorted.
	ListFiles(ctx context.Context, dir m.Path) ([]string, error)

	// Remove deletes a single file.
	Remove(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	includes []string
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter. Without includes
// it falls back to DefaultIncludes.
func NewLocalSourceFSAdapter(includes ...string) *LocalSourceFSAdapter {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	return &LocalSourceFSAdapter{includes: includes}
}

// Get walks every path pattern and returns the matching sources sorted by path.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	seen := make(map[m.Path]struct{})
	sources := make([]m.Source, 0)

	for _, pattern := range paths {
		root, recursive := splitPattern(string(pattern))

		found, err := a.collect(ctx, root, recursive, exclude)
		if err != nil {
			return nil, err
		}

		for _, source := range found {
			if _, dup := seen[source.Origin.FullPath]; dup {
				continue
			}

			seen[source.Origin.FullPath] = struct{}{}
			sources = append(sources, source)
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
	})

	return sources, nil
}

func splitPattern(pattern string) (string, bool) {
	if pattern == "..." {
		return ".", true
	}

	if strings.HasSuffix(pattern, recursiveSuffix) {
		root := strings.TrimSuffix(pattern, recursiveSuffix)
		if root == "" {
			root = "."
		}

		return root, true
	}

	return pattern, false
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, root string, recursive bool, exclude []string) ([]m.Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		source, err := a.newSource(ctx, root)
		if err != nil {
			return nil, err
		}

		return []m.Source{source}, nil
	}

	var sources []m.Source

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || matchesAny(exclude, rel) || matchesAny(exclude, rel+"/") {
				return filepath.SkipDir
			}

			return nil
		}

		if !matchesAny(a.includes, rel) || matchesAny(exclude, rel) {
			return nil
		}

		source, err := a.newSource(ctx, path)
		if err != nil {
			return err
		}

		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func (a *LocalSourceFSAdapter) newSource(ctx context.Context, path string) (m.Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	hash, err := a.HashFile(ctx, m.Path(abs))
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(abs),
			ShortPath: m.Path(filepath.ToSlash(filepath.Clean(path))),
			Hash:      hash,
		},
		Language: m.LanguageJavaScript,
	}, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates a directory tree.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// ListFiles returns the regular files directly under dir.
func (a *LocalSourceFSAdapter) ListFiles(ctx context.Context, dir m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	return names, nil
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Remove(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
