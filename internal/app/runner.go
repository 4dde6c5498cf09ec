// Package app wires the lint domain to its adapters: it discovers source
// files, parses them, walks the trees through the rule set, and assembles
// the resulting run.
package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/corey/jlint/internal/domain/lint"
	"github.com/corey/jlint/internal/ports"
)

// Directories skipped during source discovery.
var ignoreDirs = map[string]bool{
	".git":         true,
	".gradle":      true,
	".idea":        true,
	".vscode":      true,
	".jlint":       true,
	"build":        true,
	"target":       true,
	"out":          true,
	"dist":         true,
	"node_modules": true,
}

// Runner executes the configured rule set over source trees.
type Runner struct {
	Parser ports.Parser
	Rules  []lint.Rule
	Log    *slog.Logger
}

// Run checks every supported file under the given paths and returns the
// completed run. Structural errors from a malformed tree abort the run;
// they indicate a parser bug, not a user code issue.
func (r *Runner) Run(paths []string) (*lint.Run, error) {
	run := &lint.Run{
		ID:        fmt.Sprintf("run-%d", time.Now().Unix()),
		StartedAt: time.Now().UTC(),
		Paths:     paths,
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip inaccessible entries
			}
			if d.IsDir() {
				if ignoreDirs[d.Name()] && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if !r.Parser.SupportsExtension(filepath.Ext(path)) {
				return nil
			}
			findings, ferr := r.checkFile(path)
			if ferr != nil {
				return ferr
			}
			run.Files++
			run.Findings = append(run.Findings, findings...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(run.Findings, func(i, j int) bool {
		a, b := run.Findings[i], run.Findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Rule < b.Rule
	})

	r.Log.Info("check complete", "run", run.ID, "files", run.Files, "findings", len(run.Findings))
	return run, nil
}

func (r *Runner) checkFile(path string) ([]lint.Finding, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	parsed, err := r.Parser.ParseFile(path, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if parsed == nil {
		return nil, nil
	}
	defer parsed.Close()

	findings, err := lint.Walk(parsed.Root(), r.Rules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range findings {
		findings[i].File = path
	}
	r.Log.Debug("checked", "path", path, "findings", len(findings))
	return findings, nil
}
