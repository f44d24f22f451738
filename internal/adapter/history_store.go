package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// DefaultHistoryDB is the history database path used when none is configured.
const DefaultHistoryDB = ".autocomment/history.db"

var bucketHistory = []byte("history")

// ErrHistoryNotFound is returned when a path has no recorded run.
var ErrHistoryNotFound = errors.New("history record not found")

// HistoryStore remembers the last annotation of each source file.
type HistoryStore interface {
	Put(record m.HistoryRecord) error
	Get(path m.Path) (m.HistoryRecord, error)
	List() ([]m.HistoryRecord, error)
	// Changed reports the sources whose hash differs from the recorded one,
	// including sources never seen before.
	Changed(sources []m.Source) ([]m.Source, error)
	Close() error
}

// BoltHistoryStore is a HistoryStore backed by a bbolt file. Records are JSON
// encoded and keyed by the source's full path.
type BoltHistoryStore struct {
	db *bbolt.DB
}

// NewBoltHistoryStore opens (or creates) the database at path.
func NewBoltHistoryStore(path m.Path) (*BoltHistoryStore, error) {
	if path == "" {
		path = DefaultHistoryDB
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := bbolt.Open(string(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history bucket: %w", err)
	}

	slog.Debug("opened history store", "path", path)

	return &BoltHistoryStore{db: db}, nil
}

// Put stores record, replacing any earlier record for the same path.
func (s *BoltHistoryStore) Put(record m.HistoryRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode history record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHistory).Put([]byte(record.Path), data)
	})
}

// Get returns the record for path or ErrHistoryNotFound.
func (s *BoltHistoryStore) Get(path m.Path) (m.HistoryRecord, error) {
	var record m.HistoryRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketHistory).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrHistoryNotFound, path)
		}

		return json.Unmarshal(data, &record)
	})

	return record, err
}

// List returns every record, most recent first.
func (s *BoltHistoryStore) List() ([]m.HistoryRecord, error) {
	records := make([]m.HistoryRecord, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHistory).ForEach(func(_, v []byte) error {
			var record m.HistoryRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}

			records = append(records, record)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ProcessedAt.After(records[j].ProcessedAt)
	})

	return records, nil
}

// Changed filters sources down to the ones that need annotating again.
func (s *BoltHistoryStore) Changed(sources []m.Source) ([]m.Source, error) {
	changed := make([]m.Source, 0, len(sources))

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)

		for _, source := range sources {
			if source.Origin == nil {
				continue
			}

			data := bucket.Get([]byte(source.Origin.FullPath))
			if data == nil {
				changed = append(changed, source)
				continue
			}

			var record m.HistoryRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("decode history for %s: %w", source.Origin.FullPath, err)
			}

			if record.Hash != source.Origin.Hash {
				changed = append(changed, source)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("history check", "sources", len(sources), "changed", len(changed))

	return changed, nil
}

// Close releases the database file lock.
func (s *BoltHistoryStore) Close() error {
	return s.db.Close()
}
