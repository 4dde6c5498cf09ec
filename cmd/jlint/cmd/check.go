package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/adapters/bbolt"
	"github.com/corey/jlint/internal/adapters/treesitter"
	"github.com/corey/jlint/internal/app"
	"github.com/corey/jlint/internal/config"
	"github.com/corey/jlint/internal/domain/lint"
	"github.com/corey/jlint/internal/ports"
	"github.com/corey/jlint/internal/reporting"
	"github.com/corey/jlint/internal/shared"
)

var checkNoSave bool

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check Java sources for rule violations",
	Long:  "Parses the given paths (default: configured paths, or the working directory), runs the enabled rules, and reports violations. Exits 1 when violations are found.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("max", lint.DefaultMaxParameters, "maximum allowed number of parameters")
	checkCmd.Flags().Bool("ignore-overridden-methods", false, "exempt @Override methods from the parameter limit")
	checkCmd.Flags().String("format", "table", "output format: table or json")
	checkCmd.Flags().String("out", "", "directory to also write a <run-id>.json report into")
	checkCmd.Flags().String("db", "", "run database path")
	checkCmd.Flags().StringP("log-level", "", "", "log level: debug, info, warn, error")
	checkCmd.Flags().StringP("log-format", "", "", "log format: text or json")
	checkCmd.Flags().BoolVar(&checkNoSave, "no-save", false, "do not persist the run to the database")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}
	runner.Log = log

	paths := args
	if len(paths) == 0 {
		paths = cfg.Paths
	}

	run, err := runner.Run(paths)
	if err != nil {
		return err
	}
	reporting.Localize(run)

	if !checkNoSave {
		if err := saveRun(cfg, run); err != nil {
			return err
		}
	}
	if cfg.Output.Dir != "" {
		path, err := reporting.WriteJSON(cfg.Output.Dir, run)
		if err != nil {
			return err
		}
		log.Info("report written", "path", path)
	}

	if err := newReporter(cfg).Report(run); err != nil {
		return err
	}
	if len(run.Findings) > 0 {
		return exitCodeError{code: 1}
	}
	return nil
}

// newRunner builds the rule set and parser from the effective config.
func newRunner(cfg *config.Config) (*app.Runner, error) {
	rules, err := lint.Build(cfg.Checks, cfg.Disabled, lint.TreeAnnotations{})
	if err != nil {
		return nil, err
	}
	return &app.Runner{Parser: treesitter.NewParser(), Rules: rules}, nil
}

func newReporter(cfg *config.Config) ports.Reporter {
	if cfg.Output.Format == "json" {
		return reporting.JSONReporter{Out: os.Stdout}
	}
	return reporting.TableReporter{Out: os.Stdout}
}

func saveRun(cfg *config.Config, run *lint.Run) error {
	if dir := filepath.Dir(cfg.Store.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	store, err := bbolt.NewStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(projectID(), run)
}
