package ports

import "github.com/corey/jlint/internal/domain/lint"

// Reporter receives a completed run for presentation. Formatting,
// aggregation, and exit-code policy live behind this interface; rules only
// produce findings.
type Reporter interface {
	Report(run *lint.Run) error
}
