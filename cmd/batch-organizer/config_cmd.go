package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"batch-organizer/internal/config"
)

// configCmd is the command for managing persisted defaults
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure persisted defaults",
	Long:  `Set default batch size, folder prefix, extensions, and transfer mode.`,
}

// configDefaultsCmd is the command for setting default values
var configDefaultsCmd = &cobra.Command{
	Use:   "set-defaults",
	Short: "Set default values",
	Long:  `Set default values for batch size, folder prefix, file extensions, combined file name, and transfer mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")

		// Load existing config
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			cfg = config.New()
		}

		// Update config from whichever flags were set
		changed := false
		if cmd.Flags().Changed("batch-size") {
			cfg.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			changed = true
		}
		if cmd.Flags().Changed("prefix") {
			cfg.FolderPrefix, _ = cmd.Flags().GetString("prefix")
			changed = true
		}
		if cmd.Flags().Changed("text-ext") {
			cfg.TextExt, _ = cmd.Flags().GetString("text-ext")
			changed = true
		}
		if cmd.Flags().Changed("image-ext") {
			cfg.ImageExt, _ = cmd.Flags().GetString("image-ext")
			changed = true
		}
		if cmd.Flags().Changed("combined-name") {
			cfg.CombinedName, _ = cmd.Flags().GetString("combined-name")
			changed = true
		}
		if cmd.Flags().Changed("mode") {
			cfg.TransferMode, _ = cmd.Flags().GetString("mode")
			changed = true
		}
		if cmd.Flags().Changed("encoding") {
			cfg.Encoding, _ = cmd.Flags().GetString("encoding")
			changed = true
		}

		// Save config if changed
		if changed {
			if err := cfg.SaveToFile(configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Println("Successfully updated configuration.")
		} else {
			fmt.Println("No configuration changes were made.")
		}

		return nil
	},
}

// configShowCmd is the command for showing current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")

		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			cfg = config.New()
		}

		fmt.Println("Current configuration:")

		// Batch size may come from env var, config file, or the default
		batchSize := cfg.GetBatchSize()
		if os.Getenv(config.EnvBatchSize) != "" {
			fmt.Printf("  Batch size: %d (from environment variable)\n", batchSize)
		} else {
			fmt.Printf("  Batch size: %d\n", batchSize)
		}

		prefix := cfg.GetFolderPrefix()
		if os.Getenv(config.EnvFolderPrefix) != "" {
			fmt.Printf("  Folder prefix: %s (from environment variable)\n", prefix)
		} else {
			fmt.Printf("  Folder prefix: %s\n", prefix)
		}

		mode := cfg.GetTransferMode()
		if os.Getenv(config.EnvTransferMode) != "" {
			fmt.Printf("  Transfer mode: %s (from environment variable)\n", mode)
		} else {
			fmt.Printf("  Transfer mode: %s\n", mode)
		}

		fmt.Printf("  Text extension: %s\n", cfg.TextExt)
		fmt.Printf("  Image extension: %s\n", cfg.ImageExt)
		fmt.Printf("  Combined file name: %s\n", cfg.CombinedName)
		fmt.Printf("  Text encoding: %s\n", cfg.Encoding)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configShowCmd)

	// Add flags to set-defaults command
	configDefaultsCmd.Flags().Int("batch-size", 0, "Default number of file pairs per batch")
	configDefaultsCmd.Flags().String("prefix", "", "Default prefix for batch folder names")
	configDefaultsCmd.Flags().String("text-ext", "", "Default extension for text files")
	configDefaultsCmd.Flags().String("image-ext", "", "Default extension for image files")
	configDefaultsCmd.Flags().String("combined-name", "", "Default name for the concatenated text file")
	configDefaultsCmd.Flags().String("mode", "", "Default transfer mode: copy or move")
	configDefaultsCmd.Flags().String("encoding", "", "Default text encoding")
}
