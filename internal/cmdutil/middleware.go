package cmdutil

import (
	"batch-organizer/internal/common"
	"batch-organizer/internal/config"

	"github.com/spf13/cobra"
)

// WithConfig wraps a command function to provide the loaded configuration.
// The config path comes from the root --config flag; a missing or unreadable
// file falls back to built-in defaults.
func WithConfig(fn func(*cobra.Command, []string, *config.Config) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")

		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			// Fall back to defaults if the config file is unreadable
			cfg = config.New()
		}

		return fn(cmd, args, cfg)
	}
}

// WithVerbosity wraps a command function to provide a verbosity reporter
// derived from the root --verbosity flag.
func WithVerbosity(fn func(*cobra.Command, []string, *common.Verbosity) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		verbosityStr, _ := cmd.Root().PersistentFlags().GetString("verbosity")
		verbosity := common.NewVerbosity(common.ParseVerbosityLevel(verbosityStr))

		return fn(cmd, args, verbosity)
	}
}

// WithConfigAndVerbosity wraps a command function to provide both the loaded
// configuration and a verbosity reporter.
func WithConfigAndVerbosity(fn func(*cobra.Command, []string, *config.Config, *common.Verbosity) error) func(*cobra.Command, []string) error {
	return WithConfig(func(cmd *cobra.Command, args []string, cfg *config.Config) error {
		verbosityStr, _ := cmd.Root().PersistentFlags().GetString("verbosity")
		verbosity := common.NewVerbosity(common.ParseVerbosityLevel(verbosityStr))

		return fn(cmd, args, cfg, verbosity)
	})
}
