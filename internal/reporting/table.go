package reporting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/corey/jlint/internal/domain/lint"
)

// TableReporter renders a run as a terminal table, one row per finding.
type TableReporter struct {
	Out io.Writer
}

func (r TableReporter) Report(run *lint.Run) error {
	if len(run.Findings) == 0 {
		fmt.Fprintf(r.Out, "No violations in %d files.\n", run.Files)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Location", "Rule", "Message"})
	for _, f := range run.Findings {
		t.AppendRow(table.Row{
			fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
			f.Rule,
			f.Message,
		})
	}
	t.Render()

	fmt.Fprintf(r.Out, "%d violations in %d files.\n", len(run.Findings), run.Files)
	return nil
}
