package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/adapters/fsnotify"
	"github.com/corey/jlint/internal/config"
	"github.com/corey/jlint/internal/domain/lint"
	"github.com/corey/jlint/internal/reporting"
	"github.com/corey/jlint/internal/shared"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-check on every source change",
	Long:  "Watches a directory tree and re-runs the enabled rules whenever a Java file changes. Stops on interrupt.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Int("max", lint.DefaultMaxParameters, "maximum allowed number of parameters")
	watchCmd.Flags().Bool("ignore-overridden-methods", false, "exempt @Override methods from the parameter limit")
	watchCmd.Flags().String("format", "table", "output format: table or json")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}
	runner.Log = log

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := newReporter(cfg)

	// Initial pass before the first change event.
	run, err := runner.Run([]string{root})
	if err != nil {
		return err
	}
	reporting.Localize(run)
	if err := reporter.Report(run); err != nil {
		return err
	}

	log.Info("watching", "root", root)
	return runner.WatchLoop(ctx, root, watcher, func(run *lint.Run) {
		reporting.Localize(run)
		if err := reporter.Report(run); err != nil {
			log.Error("report failed", "err", err)
		}
	})
}
