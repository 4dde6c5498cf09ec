// Package config loads jlint configuration. Precedence, highest to lowest:
// command-line flags > JLINT_* environment variables > jlint.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/corey/jlint/internal/domain/lint"
)

// Config holds all jlint settings.
type Config struct {
	// Paths checked when the command line names none.
	Paths []string `koanf:"paths"`

	// Checks maps rule ID to its options, e.g.
	// checks.ParameterNumber: {max: 7, ignoreOverriddenMethods: false}.
	Checks map[string]lint.Options `koanf:"checks"`

	// Disabled lists rule IDs excluded from the run.
	Disabled []string `koanf:"disabled"`

	Output  OutputConfig  `koanf:"output"`
	Store   StoreConfig   `koanf:"store"`
	Logging LoggingConfig `koanf:"logging"`
}

type OutputConfig struct {
	Format string `koanf:"format"` // "table" | "json"
	Dir    string `koanf:"dir"`    // when set, also write <run-id>.json here
}

type StoreConfig struct {
	Path string `koanf:"path"` // bbolt database file
}

type LoggingConfig struct {
	Format string `koanf:"format"` // "json" | "text"
	Level  string `koanf:"level"`  // "debug" | "info" | "warn" | "error"
}

const envPrefix = "JLINT_"

// configNames are searched in the working directory when --config is not given.
var configNames = []string{"jlint.yaml", "jlint.yml"}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"paths":          []string{"."},
		"output.format":  "table",
		"store.path":     filepath.Join(".jlint", "jlint.db"),
		"logging.format": "text",
		"logging.level":  "info",
	}
}

// findConfigFile resolves the config file to use. An explicit path wins;
// otherwise the standard names are tried in order.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the effective configuration. flags may be nil; only flags
// explicitly set by the user override file and environment values.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file %s not found", cfgFile)
	}

	// JLINT_OUTPUT_FORMAT -> output.format. Rule options use camelCase keys
	// and are file/flag-only.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"max":                       "checks." + lint.RuleIDParameterNumber + "." + lint.OptionMax,
	"ignore-overridden-methods": "checks." + lint.RuleIDParameterNumber + "." + lint.OptionIgnoreOverridden,
	"format":                    "output.format",
	"out":                       "output.dir",
	"db":                        "store.path",
	"log-level":                 "logging.level",
	"log-format":                "logging.format",
}
