// Package bbolt implements the ports.Store interface using bbolt (embedded
// B+ tree). Each project gets its own top-level bucket with a "runs"
// sub-bucket holding JSON-serialized runs. Writes are transactional — a
// crash mid-write cannot corrupt previously committed runs.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/jlint/internal/domain/lint"
)

var bucketRuns = []byte("runs")

// Store implements ports.Store backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists one run under the project's runs bucket, keyed by run ID.
func (s *Store) SaveRun(projectID string, run *lint.Run) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("run must have an ID")
	}
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		proj, err := tx.CreateBucketIfNotExists([]byte(projectID))
		if err != nil {
			return err
		}
		runs, err := proj.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return runs.Put([]byte(run.ID), data)
	})
}

// LoadRun reads a stored run by ID.
func (s *Store) LoadRun(projectID, runID string) (*lint.Run, error) {
	var run lint.Run
	err := s.db.View(func(tx *bolt.Tx) error {
		runs := runsBucket(tx, projectID)
		if runs == nil {
			return fmt.Errorf("no runs stored for project %q", projectID)
		}
		data := runs.Get([]byte(runID))
		if data == nil {
			return fmt.Errorf("run %q not found", runID)
		}
		return json.Unmarshal(data, &run)
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns summaries of all stored runs, newest first.
func (s *Store) ListRuns(projectID string) ([]lint.RunSummary, error) {
	var out []lint.RunSummary
	err := s.db.View(func(tx *bolt.Tx) error {
		runs := runsBucket(tx, projectID)
		if runs == nil {
			return nil
		}
		return runs.ForEach(func(_, v []byte) error {
			var run lint.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("decode stored run: %w", err)
			}
			out = append(out, run.Summary())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func runsBucket(tx *bolt.Tx, projectID string) *bolt.Bucket {
	proj := tx.Bucket([]byte(projectID))
	if proj == nil {
		return nil
	}
	return proj.Bucket(bucketRuns)
}
