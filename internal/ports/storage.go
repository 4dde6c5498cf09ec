package ports

import "github.com/corey/jlint/internal/domain/lint"

// Store persists analysis runs per project so later invocations can list
// them and diff two runs against each other.
type Store interface {
	SaveRun(projectID string, run *lint.Run) error
	LoadRun(projectID, runID string) (*lint.Run, error)
	ListRuns(projectID string) ([]lint.RunSummary, error)
	Close() error
}
