// Package pkg holds small helpers shared by the commands and workflows.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultSpillDir is used when NewFileSpill is given an empty directory.
var DefaultSpillDir = os.TempDir()

// FileSpill is an append-only, gob-encoded list of T kept on disk so large
// runs do not hold every item in memory.
type FileSpill[T any] interface {
	Len() int
	Path() string
	Append(item T) error
	// Each decodes the items in append order. Returning an error from fn
	// stops the iteration and returns that error.
	Each(fn func(index int, item T) error) error
	// Collect decodes every item into a slice.
	Collect() ([]T, error)
	// Close closes the file and deletes it.
	Close() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	file    *os.File
	encoder *gob.Encoder
	length  int
	closed  bool
}

// NewFileSpill creates a spill file under dir, or DefaultSpillDir when dir is
// empty.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = DefaultSpillDir
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create spill dir: %w", err)
	}

	file, err := os.CreateTemp(dir, "autocomment-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "dir", dir, "error", err)
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("created spill", "path", file.Name())

	return &fileSpill[T]{file: file, encoder: gob.NewEncoder(file)}, nil
}

func (s *fileSpill[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *fileSpill[T]) Path() string {
	return s.file.Name()
}

func (s *fileSpill[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSpillClosed
	}

	if err := s.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode item %d: %w", s.length, err)
	}

	s.length++

	return nil
}

func (s *fileSpill[T]) Each(fn func(index int, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSpillClosed
	}

	reader, err := os.Open(s.file.Name())
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		_ = reader.Close()
	}()

	decoder := gob.NewDecoder(reader)

	for i := range s.length {
		// gob skips zero-valued fields, so every item decodes into a fresh value.
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (s *fileSpill[T]) Collect() ([]T, error) {
	items := make([]T, 0, s.Len())

	err := s.Each(func(_ int, item T) error {
		items = append(items, item)
		return nil
	})

	return items, err
}

func (s *fileSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	closeErr := s.file.Close()
	removeErr := os.Remove(s.file.Name())

	slog.Debug("closed spill", "path", s.file.Name(), "items", s.length)

	return errors.Join(closeErr, removeErr)
}

var errSpillClosed = errors.New("spill is closed")
