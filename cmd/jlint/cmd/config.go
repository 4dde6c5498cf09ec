package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/jlint/internal/config"
	"github.com/corey/jlint/internal/domain/lint"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, nil)
	if err != nil {
		return err
	}

	fmt.Println("jlint config")
	fmt.Printf("  Paths:     %s\n", strings.Join(cfg.Paths, ", "))
	fmt.Printf("  Store:     %s\n", cfg.Store.Path)
	fmt.Printf("  Output:    %s\n", cfg.Output.Format)
	if cfg.Output.Dir != "" {
		fmt.Printf("  Reports:   %s\n", cfg.Output.Dir)
	}
	fmt.Printf("  Logging:   %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
	if len(cfg.Disabled) > 0 {
		fmt.Printf("  Disabled:  %s\n", strings.Join(cfg.Disabled, ", "))
	}
	for _, e := range lint.List() {
		opts := cfg.Checks[e.ID]
		if len(opts) == 0 {
			fmt.Printf("  %s: defaults\n", e.ID)
			continue
		}
		fmt.Printf("  %s: %v\n", e.ID, opts)
	}
	return nil
}
