package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"batch-organizer/internal/cmdutil"
	"batch-organizer/internal/common"
	"batch-organizer/internal/config"
	"batch-organizer/internal/organizer"
)

// createScanCmd creates the command that reports discovered file pairs
// without mutating anything.
func createScanCmd() *cobra.Command {
	var textExt string
	var imageExt string
	var outputFormat string

	runE := cmdutil.WithConfigAndVerbosity(func(cmd *cobra.Command, args []string, cfg *config.Config, verbosity *common.Verbosity) error {
		sourceDir := args[0]

		if !cmd.Flags().Changed("text-ext") {
			textExt = cfg.TextExt
		}
		if !cmd.Flags().Changed("image-ext") {
			imageExt = cfg.ImageExt
		}

		format, err := common.ParseOutputFormat(outputFormat)
		if err != nil {
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

		scan, err := organizer.Discover(sourceDir, textExt, imageExt)
		if err != nil {
			return err
		}

		switch format {
		case common.OutputFormatJSON:
			return common.OutputJSON(scan)

		case common.OutputFormatTable:
			rows := make([][]string, 0, len(scan.Pairs))
			for i, pair := range scan.Pairs {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					pair.BaseName(),
					pair.TextPath,
					pair.ImagePath,
				})
			}
			common.FormatTable([]string{"#", "NAME", "TEXT FILE", "IMAGE FILE"}, rows)
			fmt.Printf("\n%d pairs, %d unmatched text files\n", len(scan.Pairs), len(scan.Unmatched))
			return nil

		default:
			verbosity.Println("Scanning directory: %s", sourceDir)
			verbosity.Println("Found %d %s files", scan.TextFileCount, textExt)
			for _, name := range scan.Unmatched {
				verbosity.Warnln("No matching %s for %s", imageExt, name)
			}
			verbosity.Println("Found %d complete file pairs", len(scan.Pairs))
			for _, pair := range scan.Pairs {
				verbosity.Verboseln("  %s + %s", pair.TextPath, pair.ImagePath)
			}
			return nil
		}
	})

	return cmdutil.NewCommand(
		"scan <source-dir>",
		"Report file pairs in a directory without organizing them",
		`Scan a directory for paired text and image files and report the complete
pairs and any unmatched text files. No files are moved, copied, or created.`,
	).
		WithExample(`  # Human-readable report
  batch-organizer scan /data/scans

  # Machine-readable report
  batch-organizer scan /data/scans --output json

  # Aligned table of pairs
  batch-organizer scan /data/scans --output table`).
		WithArgs(cobra.ExactArgs(1)).
		WithStringFlag("text-ext", config.DefaultTextExt, "Extension for text files", &textExt).
		WithStringFlag("image-ext", config.DefaultImageExt, "Extension for image files", &imageExt).
		WithStringFlag("output", "text", "Output format: text, json, or table", &outputFormat).
		WithRunE(runE).
		Build()
}

func init() {
	rootCmd.AddCommand(createScanCmd())
}
