package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set by ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// logger is the process-wide structured logger, configured from --log-level
var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// rootCmd is the base command for the CLI application
var rootCmd = &cobra.Command{
	Use:   "batch-organizer",
	Short: "CLI tool for organizing paired text and image files into batches",
	Long: `A command-line interface tool for organizing paired text and image files
into fixed-size batch folders. Each batch folder receives copies (or moved
originals) of its file pairs plus a single concatenated text file with a
page-break separator between documents.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("batch-organizer version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Add version command
	rootCmd.AddCommand(versionCmd)

	// Add global flags
	rootCmd.PersistentFlags().String("verbosity", "normal", "Verbosity level: quiet, normal, verbose, debug")
	rootCmd.PersistentFlags().String("log-level", "warn", "Structured log level for diagnostics: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON or YAML config file (default: ~/.batch-organizer.json)")
	rootCmd.PersistentFlags().Bool("version", false, "Print version information")
}

// setupCommandValidation recursively adds help handling, logger setup, and
// flag validation to all commands
func setupCommandValidation(cmd *cobra.Command) {
	original := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Check if --help is present anywhere in the arguments
		for _, arg := range os.Args {
			if arg == "--help" || arg == "-h" {
				_ = cmd.Help()
				os.Exit(0)
			}
		}

		// Check for version flag (only for root command)
		if cmd == rootCmd {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Printf("batch-organizer version %s\n", version)
				os.Exit(0)
			}
		}

		// Configure the structured logger from the --log-level flag
		levelStr, _ := cmd.Root().PersistentFlags().GetString("log-level")
		if lvl, err := zerolog.ParseLevel(levelStr); err == nil {
			logger = logger.Level(lvl)
		}

		// Continue with original pre-run if it exists
		if original != nil {
			return original(cmd, args)
		}
		return nil
	}

	// Add validation to all command's flags
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == "string" {
			flag.Usage += " (requires a value)"
		}
	})

	// Recurse into subcommands
	for _, subCmd := range cmd.Commands() {
		setupCommandValidation(subCmd)
	}
}

// main is the entry point for the application
func main() {
	setupCommandValidation(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
