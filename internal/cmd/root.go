// Package cmd provides CLI command implementations.
package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scaffoldkit/cli/internal/config"
	"github.com/scaffoldkit/cli/internal/output"
	"github.com/scaffoldkit/cli/internal/version"
)

var (
	// Global flags
	pathFlag       string
	configFlag     string
	authorFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	scaffoldConfig *config.Config
)

// addGlobalFlags registers the flags shared by both generator commands.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pathFlag, "path", "", "Base path for project creation (default: current directory)")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: SCAFFOLD_CONFIG)")
	cmd.PersistentFlags().StringVar(&authorFlag, "author", "", "Author for LICENSE and package metadata (env: SCAFFOLD_AUTHOR)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Warn("ignoring unreadable config file", "error", err)
		// Don't fail here - generation works without a config file
		cfg = (&config.Config{}).WithDefaults()
	}
	scaffoldConfig = cfg

	// Timestamps precedence: flag (if explicitly set) > config > default (true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.GetInfo()
	output.Debug("scaffold started", "version", info.Version, "author", resolveAuthor())

	return nil
}

// resolveAuthor returns the author with precedence flag > env/config > default.
// Environment and config-file values are already merged by the loader.
func resolveAuthor() string {
	if authorFlag != "" {
		return authorFlag
	}
	if scaffoldConfig != nil && scaffoldConfig.Author != "" {
		return scaffoldConfig.Author
	}
	return config.DefaultAuthor
}

// resolveBasePath returns the absolute base path with precedence
// flag > config > current directory.
func resolveBasePath() (string, error) {
	base := pathFlag
	if base == "" && scaffoldConfig != nil && scaffoldConfig.BasePath != "" {
		expanded, err := config.ExpandPath(scaffoldConfig.BasePath)
		if err != nil {
			return "", err
		}
		base = expanded
	}
	if base == "" {
		base = "."
	}

	return filepath.Abs(base)
}
