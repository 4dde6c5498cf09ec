package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/adapters/bbolt"
	"github.com/corey/jlint/internal/config"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored analysis runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().String("db", "", "run database path")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	store, err := bbolt.NewStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.ListRuns(projectID())
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Started", "Files", "Findings"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.StartedAt.Format(time.RFC3339), s.Files, s.Findings})
	}
	t.Render()
	return nil
}
