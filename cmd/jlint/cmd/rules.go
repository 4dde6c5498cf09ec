package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/domain/lint"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules",
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Summary"})
	for _, e := range lint.List() {
		t.AppendRow(table.Row{e.ID, e.Summary})
	}
	t.Render()
	return nil
}
