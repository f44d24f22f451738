package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name    string
	Count   int
	Skipped bool
}

func TestFileSpill(t *testing.T) {
	t.Run("creates the file under the given dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "spill")

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, dir, filepath.Dir(spill.Path()))
		assert.FileExists(t, spill.Path())
	})

	t.Run("Append and Collect keep order", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))
		require.NoError(t, spill.Append("third"))

		items, err := spill.Collect()
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, items)
		assert.Equal(t, 3, spill.Len())
	})

	t.Run("zero fields do not leak between items", func(t *testing.T) {
		spill, err := NewFileSpill[record](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(record{Name: "a.js", Count: 3, Skipped: true}))
		require.NoError(t, spill.Append(record{Name: "b.js"}))

		items, err := spill.Collect()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, record{Name: "b.js"}, items[1])
	})

	t.Run("Each stops on callback error", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		for i := range 5 {
			require.NoError(t, spill.Append(i))
		}

		stop := errors.New("stop")
		seen := 0

		err = spill.Each(func(index int, _ int) error {
			seen++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		assert.Equal(t, 2, seen)
	})

	t.Run("empty spill collects nothing", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		items, err := spill.Collect()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("concurrent appends are all kept", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		var wg sync.WaitGroup

		for i := range 50 {
			wg.Add(1)

			go func(v int) {
				defer wg.Done()
				assert.NoError(t, spill.Append(v))
			}(i)
		}

		wg.Wait()

		items, err := spill.Collect()
		require.NoError(t, err)
		assert.Len(t, items, 50)
		assert.ElementsMatch(t, func() []int {
			want := make([]int, 50)
			for i := range want {
				want[i] = i
			}

			return want
		}(), items)
	})

	t.Run("Close removes the file and is idempotent", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		path := spill.Path()
		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
		assert.Error(t, spill.Append(2))
	})

	t.Run("empty dir falls back to the default", func(t *testing.T) {
		original := DefaultSpillDir
		DefaultSpillDir = t.TempDir()
		t.Cleanup(func() { DefaultSpillDir = original })

		spill, err := NewFileSpill[int]("")
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, DefaultSpillDir, filepath.Dir(spill.Path()))
	})
}
