// Package reporting renders findings for people and machines: message
// templates, terminal tables, JSON output, and run-vs-run diffs.
package reporting

import (
	"fmt"

	"github.com/corey/jlint/internal/domain/lint"
)

// templates maps message keys to English templates. Rules attach keys and
// arguments; text lives here so wording changes never touch rule logic.
var templates = map[string]string{
	lint.MsgMaxParam: "More than %d parameters (found %d).",
}

// Message renders a finding's message from its key and arguments. Unknown
// keys fall back to the key itself so a finding is never silently dropped.
func Message(f lint.Finding) string {
	tpl, ok := templates[f.Key]
	if !ok {
		return f.Key
	}
	return fmt.Sprintf(tpl, f.Args...)
}

// Localize fills the rendered message on every finding in the run. Called
// once before the run is reported or persisted.
func Localize(run *lint.Run) {
	for i := range run.Findings {
		if run.Findings[i].Message == "" {
			run.Findings[i].Message = Message(run.Findings[i])
		}
	}
}
