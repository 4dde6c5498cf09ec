package reporting

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/corey/jlint/internal/domain/lint"
)

// JSONReporter writes the full run as indented JSON.
type JSONReporter struct {
	Out io.Writer
}

func (r JSONReporter) Report(run *lint.Run) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteJSON writes the run to <outDir>/<run-id>.json and returns the path.
func WriteJSON(outDir string, run *lint.Run) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, run.ID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := (JSONReporter{Out: f}).Report(run); err != nil {
		return "", err
	}
	return path, nil
}
