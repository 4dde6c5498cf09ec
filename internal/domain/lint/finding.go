package lint

import "time"

// Message keys. Rendering the key into user-facing text is the reporting
// layer's job; rules only attach the key and its arguments.
const MsgMaxParam = "maxParam"

// Finding is a single reported rule violation. Line and Column come from
// the declaration's name identifier, 1-based. Args hold the numeric
// message arguments in template order.
type Finding struct {
	Rule    string `json:"rule"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Key     string `json:"key"`
	Args    []any  `json:"args,omitempty"`
	Message string `json:"message,omitempty"`
}

// Run is one analysis pass over a set of paths.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Paths     []string  `json:"paths,omitempty"`
	Files     int       `json:"files"`
	Findings  []Finding `json:"findings,omitempty"`
}

// RunSummary is the listing form of a stored run.
type RunSummary struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Files     int       `json:"files"`
	Findings  int       `json:"findings"`
}

// Summary reduces a run to its listing form.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		Files:     r.Files,
		Findings:  len(r.Findings),
	}
}
