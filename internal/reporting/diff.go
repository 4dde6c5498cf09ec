package reporting

import (
	"fmt"
	"sort"

	"github.com/corey/jlint/internal/domain/lint"
)

// Diff classifies findings between two runs: New appeared in head only,
// Fixed appeared in base only. Findings are matched by rule, file,
// position, and rendered message.
type Diff struct {
	BaseID string         `json:"base_id"`
	HeadID string         `json:"head_id"`
	New    []lint.Finding `json:"new,omitempty"`
	Fixed  []lint.Finding `json:"fixed,omitempty"`
}

// Compare diffs two runs.
func Compare(base, head *lint.Run) Diff {
	bm := make(map[string]lint.Finding, len(base.Findings))
	hm := make(map[string]lint.Finding, len(head.Findings))
	for _, f := range base.Findings {
		bm[keyOf(f)] = f
	}
	for _, f := range head.Findings {
		hm[keyOf(f)] = f
	}

	d := Diff{BaseID: base.ID, HeadID: head.ID}
	for k, f := range hm {
		if _, ok := bm[k]; !ok {
			d.New = append(d.New, f)
		}
	}
	for k, f := range bm {
		if _, ok := hm[k]; !ok {
			d.Fixed = append(d.Fixed, f)
		}
	}
	sortFindings(d.New)
	sortFindings(d.Fixed)
	return d
}

func keyOf(f lint.Finding) string {
	return fmt.Sprintf("%s|%s|%d:%d|%s", f.Rule, f.File, f.Line, f.Column, f.Message)
}

func sortFindings(fs []lint.Finding) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].File != fs[j].File {
			return fs[i].File < fs[j].File
		}
		if fs[i].Line != fs[j].Line {
			return fs[i].Line < fs[j].Line
		}
		return fs[i].Column < fs[j].Column
	})
}
