package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/adapters/bbolt"
	"github.com/corey/jlint/internal/config"
	"github.com/corey/jlint/internal/domain/lint"
	"github.com/corey/jlint/internal/reporting"
)

var (
	diffBase string
	diffHead string
)

var diffCmd = &cobra.Command{
	Use:   "diff --base <run-id> --head <run-id>",
	Short: "Compare two stored runs",
	Long:  "Shows findings introduced and fixed between two stored runs. Exits 1 when the head run introduced findings.",
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffBase, "base", "", "base run ID")
	diffCmd.Flags().StringVar(&diffHead, "head", "", "head run ID")
	diffCmd.Flags().String("db", "", "run database path")
	diffCmd.MarkFlagRequired("base")
	diffCmd.MarkFlagRequired("head")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	store, err := bbolt.NewStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	base, err := store.LoadRun(projectID(), diffBase)
	if err != nil {
		return err
	}
	head, err := store.LoadRun(projectID(), diffHead)
	if err != nil {
		return err
	}

	d := reporting.Compare(base, head)
	printFindings("New", d.New)
	printFindings("Fixed", d.Fixed)
	fmt.Printf("%d new, %d fixed between %s and %s.\n", len(d.New), len(d.Fixed), d.BaseID, d.HeadID)

	if len(d.New) > 0 {
		return exitCodeError{code: 1}
	}
	return nil
}

func printFindings(label string, findings []lint.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Println(label + ":")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Location", "Rule", "Message"})
	for _, f := range findings {
		t.AppendRow(table.Row{fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column), f.Rule, f.Message})
	}
	t.Render()
}
