package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// jsTree lays out a small project with dependency and build directories.
func jsTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "app.js"), "function main() {}\n")
	writeTestFile(t, filepath.Join(root, "lib", "util.mjs"), "export const util = 1;\n")
	writeTestFile(t, filepath.Join(root, "lib", "deep", "helper.cjs"), "let helper = 2;\n")
	writeTestFile(t, filepath.Join(root, "lib", "notes.txt"), "not code\n")
	writeTestFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "module.exports = 1;\n")
	writeTestFile(t, filepath.Join(root, "dist", "bundle.js"), "var a=1;\n")
	writeTestFile(t, filepath.Join(root, "vendor.min.js"), "var b=2;\n")

	return root
}

func shortPaths(t *testing.T, root string, sources []m.Source) []string {
	t.Helper()

	paths := make([]string, 0, len(sources))
	for _, source := range sources {
		rel, err := filepath.Rel(root, string(source.Origin.FullPath))
		require.NoError(t, err)
		paths = append(paths, filepath.ToSlash(rel))
	}

	return paths
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("recursive honours default excludes", func(t *testing.T) {
		root := jsTree(t)
		a := NewLocalSourceFSAdapter()

		sources, err := a.Get(ctx, []m.Path{m.Path(root + "/...")}, DefaultExcludes...)
		require.NoError(t, err)

		assert.Equal(t, []string{"app.js", "lib/deep/helper.cjs", "lib/util.mjs"}, shortPaths(t, root, sources))

		for _, source := range sources {
			assert.Equal(t, m.LanguageJavaScript, source.Language)
			assert.NotEmpty(t, source.Origin.Hash)
		}
	})

	t.Run("directory without suffix is not recursive", func(t *testing.T) {
		root := jsTree(t)
		a := NewLocalSourceFSAdapter()

		sources, err := a.Get(ctx, []m.Path{m.Path(filepath.Join(root, "lib"))})
		require.NoError(t, err)

		require.Len(t, sources, 1)
		assert.Equal(t, "util.mjs", filepath.Base(string(sources[0].Origin.FullPath)))
	})

	t.Run("single file is returned as is", func(t *testing.T) {
		root := jsTree(t)
		a := NewLocalSourceFSAdapter()

		sources, err := a.Get(ctx, []m.Path{m.Path(filepath.Join(root, "lib", "notes.txt"))})
		require.NoError(t, err)
		require.Len(t, sources, 1)
	})

	t.Run("custom excludes and includes", func(t *testing.T) {
		root := jsTree(t)
		a := NewLocalSourceFSAdapter("**/*.js")

		sources, err := a.Get(ctx, []m.Path{m.Path(root + "/...")}, "node_modules/**", "dist")
		require.NoError(t, err)

		assert.Equal(t, []string{"app.js", "vendor.min.js"}, shortPaths(t, root, sources))
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		root := jsTree(t)
		a := NewLocalSourceFSAdapter()

		app := m.Path(filepath.Join(root, "app.js"))
		sources, err := a.Get(ctx, []m.Path{app, app, m.Path(root)}, DefaultExcludes...)
		require.NoError(t, err)
		require.Len(t, sources, 1)
	})

	t.Run("missing root", func(t *testing.T) {
		a := NewLocalSourceFSAdapter()

		_, err := a.Get(ctx, []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("default pattern scans working directory", func(t *testing.T) {
		root := jsTree(t)
		t.Chdir(root)

		sources, err := NewLocalSourceFSAdapter().Get(ctx, nil, DefaultExcludes...)
		require.NoError(t, err)
		require.Len(t, sources, 3)
		assert.Equal(t, m.Path("app.js"), sources[0].Origin.ShortPath)
	})

	t.Run("cancelled context", func(t *testing.T) {
		root := jsTree(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewLocalSourceFSAdapter().Get(cancelled, []m.Path{m.Path(root + "/...")})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern       string
		wantRoot      string
		wantRecursive bool
	}{
		{"...", ".", true},
		{"./...", ".", true},
		{"/...", ".", true},
		{"src/...", "src", true},
		{"src", "src", false},
		{"app.js", "app.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			root, recursive := splitPattern(tt.pattern)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantRecursive, recursive)
		})
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.js")
	writeTestFile(t, path, "let total = 1;\n")

	hash, err := NewLocalSourceFSAdapter().HashFile(context.Background(), m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte("let total = 1;\n"))), hash)

	_, err = NewLocalSourceFSAdapter().HashFile(context.Background(), m.Path(path+".missing"))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_FileOperations(t *testing.T) {
	ctx := context.Background()
	a := NewLocalSourceFSAdapter()
	dir := a.JoinPath(t.TempDir(), "out", "nested")

	require.NoError(t, a.MkdirAll(ctx, dir))

	for _, name := range []string{"b.js", "a.js"} {
		require.NoError(t, a.WriteFile(ctx, a.JoinPath(string(dir), name), []byte(name), 0o600))
	}

	require.NoError(t, a.MkdirAll(ctx, a.JoinPath(string(dir), "sub")))

	names, err := a.ListFiles(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "b.js"}, names)

	content, err := a.ReadFile(ctx, a.JoinPath(string(dir), "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "a.js", string(content))

	require.NoError(t, a.Remove(ctx, a.JoinPath(string(dir), "a.js")))

	names, err = a.ListFiles(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.js"}, names)

	_, err = a.ListFiles(ctx, a.JoinPath(string(dir), "missing"))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_RespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewLocalSourceFSAdapter()
	dir := m.Path(t.TempDir())

	_, err := a.ReadFile(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, a.WriteFile(ctx, dir, nil, 0o600), context.Canceled)
	require.ErrorIs(t, a.MkdirAll(ctx, dir), context.Canceled)
	require.ErrorIs(t, a.Remove(ctx, dir), context.Canceled)

	_, err = a.ListFiles(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)

	_, err = a.HashFile(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}
