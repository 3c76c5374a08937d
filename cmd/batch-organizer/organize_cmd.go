package main

import (
	"github.com/spf13/cobra"

	"batch-organizer/internal/cmdutil"
	"batch-organizer/internal/common"
	"batch-organizer/internal/config"
	"batch-organizer/internal/organizer"
)

// createOrganizeCmd creates the command that runs the full pipeline:
// scan, pair, partition, transfer, and concatenate.
func createOrganizeCmd() *cobra.Command {
	// Define local variables for this command's flags
	var batchSize int
	var folderPrefix string
	var textExt string
	var imageExt string
	var combinedName string
	var mode string
	var move bool
	var encodingName string
	var namesListPath string
	var dryRun bool
	var outputFormat string

	runE := cmdutil.WithConfigAndVerbosity(func(cmd *cobra.Command, args []string, cfg *config.Config, verbosity *common.Verbosity) error {
		sourceDir := args[0]

		// Flags take priority; unset flags fall back to the environment,
		// then the config file, then built-in defaults.
		if !cmd.Flags().Changed("batch-size") {
			batchSize = cfg.GetBatchSize()
		}
		if !cmd.Flags().Changed("prefix") {
			folderPrefix = cfg.GetFolderPrefix()
		}
		if !cmd.Flags().Changed("text-ext") {
			textExt = cfg.TextExt
		}
		if !cmd.Flags().Changed("image-ext") {
			imageExt = cfg.ImageExt
		}
		if !cmd.Flags().Changed("combined-name") {
			combinedName = cfg.CombinedName
		}
		if !cmd.Flags().Changed("encoding") {
			encodingName = cfg.Encoding
		}
		if !cmd.Flags().Changed("mode") {
			mode = cfg.GetTransferMode()
		}
		if move {
			mode = "move"
		}

		transferMode, err := organizer.ParseTransferMode(mode)
		if err != nil {
			return err
		}

		if err := common.ValidateSourceDir(sourceDir); err != nil {
			return err
		}

		textExt, err = common.NormalizeExtension(textExt)
		if err != nil {
			return err
		}
		imageExt, err = common.NormalizeExtension(imageExt)
		if err != nil {
			return err
		}

		// Optional selection list restricting which base names are organized
		var names map[string]bool
		if namesListPath != "" {
			list, err := common.ReadNamesFromFile(namesListPath, "")
			if err != nil {
				return err
			}
			names = common.NameSet(list)
			verbosity.Verboseln("Restricting run to %d names from %s", len(names), namesListPath)
		}

		org := organizer.New(organizer.Options{
			SourceDir:    sourceDir,
			BatchSize:    batchSize,
			FolderPrefix: folderPrefix,
			TextExt:      textExt,
			ImageExt:     imageExt,
			CombinedName: combinedName,
			Mode:         transferMode,
			Encoding:     encodingName,
			Names:        names,
			DryRun:       dryRun,
		}, verbosity, logger)

		summary, err := org.Run()
		if err != nil {
			return err
		}

		if outputFormat == string(common.OutputFormatJSON) {
			return common.OutputJSON(summary)
		}
		return nil
	})

	return cmdutil.NewCommand(
		"organize <source-dir>",
		"Organize paired text and image files into batch folders",
		`Scan a directory for paired text and image files, group the pairs into
fixed-size batches, copy or move each batch into a numbered subfolder, and
write one concatenated text file per batch with a page-break separator
between documents.`,
	).
		WithExample(`  # Organize into batches of 250 pairs (copy mode)
  batch-organizer organize /data/scans

  # Smaller batches under custom folder names, moving instead of copying
  batch-organizer organize /data/scans --batch-size 100 --prefix Project --move

  # Different extensions and a dry run preview
  batch-organizer organize /data/scans --text-ext .txt --image-ext .png --dry-run`).
		WithArgs(cobra.ExactArgs(1)).
		WithIntFlag("batch-size", config.DefaultBatchSize, "Number of file pairs per batch", &batchSize).
		WithStringFlag("prefix", config.DefaultFolderPrefix, "Prefix for batch folder names", &folderPrefix).
		WithStringFlag("text-ext", config.DefaultTextExt, "Extension for text files", &textExt).
		WithStringFlag("image-ext", config.DefaultImageExt, "Extension for image files", &imageExt).
		WithStringFlag("combined-name", config.DefaultCombinedName, "Name for the concatenated text file", &combinedName).
		WithStringFlag("mode", config.DefaultTransferMode, "Transfer mode: copy or move", &mode).
		WithBoolFlag("move", false, "Move files instead of copying them (shorthand for --mode move)", &move).
		WithStringFlag("encoding", config.DefaultEncoding, "Text encoding for reading and writing documents", &encodingName).
		WithStringFlag("names-list", "", "Path to a text/CSV/JSON file restricting which base names are organized", &namesListPath).
		WithBoolFlag("dry-run", false, "Report the plan without moving or copying anything", &dryRun).
		WithStringFlag("output", "text", "Summary output format: text or json", &outputFormat).
		WithRunE(runE).
		Build()
}

func init() {
	rootCmd.AddCommand(createOrganizeCmd())
}
