package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"batch-organizer/internal/common"
)

// ErrNoPairs is returned when discovery finds no complete file pairs.
// The run ends cleanly without touching the file system.
var ErrNoPairs = errors.New("no file pairs found")

// Options configures a single organizer run
type Options struct {
	// SourceDir is the directory containing the files to organize
	SourceDir string
	// BatchSize is the number of file pairs per batch, must be positive
	BatchSize int
	// FolderPrefix is the prefix for batch folder names
	FolderPrefix string
	// TextExt is the extension of text files, with leading dot
	TextExt string
	// ImageExt is the extension of image files, with leading dot
	ImageExt string
	// CombinedName is the file name of the concatenated text artifact
	CombinedName string
	// Mode selects copying or moving files into batch folders
	Mode TransferMode
	// Encoding is the text encoding for reading and writing documents
	Encoding string
	// Names optionally restricts the run to pairs with these base names
	Names map[string]bool
	// DryRun reports the plan without mutating the file system
	DryRun bool
}

// Summary describes what a run did (or, for a dry run, would do)
type Summary struct {
	SourceDir string `json:"source_dir"`
	TextFiles int    `json:"text_files"`
	Pairs     int    `json:"pairs"`
	Unmatched int    `json:"unmatched"`
	Batches   int    `json:"batches"`
	BatchSize int    `json:"batch_size"`
	Mode      string `json:"mode"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// Organizer runs the scan, pair, partition, transfer, and concatenate
// pipeline against one source directory. Execution is strictly sequential:
// batches one at a time, pairs one at a time, then a concatenation pass.
type Organizer struct {
	opts Options
	out  *common.Verbosity
	log  zerolog.Logger
}

// New creates an Organizer for the given options
func New(opts Options, out *common.Verbosity, log zerolog.Logger) *Organizer {
	if out == nil {
		out = common.NewVerbosity(common.VerbosityNormal)
	}
	return &Organizer{
		opts: opts,
		out:  out,
		log:  log,
	}
}

// Run executes the pipeline. Validation and discovery failures abort before
// any mutation; transfer and concatenation failures are fatal and may leave
// a batch partially materialized, with no rollback.
func (o *Organizer) Run() (*Summary, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	o.out.Println("Scanning directory: %s", o.opts.SourceDir)
	o.log.Debug().Str("dir", o.opts.SourceDir).Str("text_ext", o.opts.TextExt).
		Str("image_ext", o.opts.ImageExt).Msg("starting discovery")

	scan, err := Discover(o.opts.SourceDir, o.opts.TextExt, o.opts.ImageExt)
	if err != nil {
		return nil, err
	}

	o.out.Println("Found %d %s files", scan.TextFileCount, o.opts.TextExt)
	for _, name := range scan.Unmatched {
		o.out.Warnln("No matching %s for %s", o.opts.ImageExt, name)
	}

	pairs := FilterByNames(scan.Pairs, o.opts.Names)
	o.out.Println("Found %d complete file pairs", len(pairs))

	summary := &Summary{
		SourceDir: o.opts.SourceDir,
		TextFiles: scan.TextFileCount,
		Pairs:     len(pairs),
		Unmatched: len(scan.Unmatched),
		BatchSize: o.opts.BatchSize,
		Mode:      o.opts.Mode.String(),
		DryRun:    o.opts.DryRun,
	}

	if len(pairs) == 0 {
		o.out.Println("No file pairs found. Exiting.")
		return summary, ErrNoPairs
	}

	batches, err := Partition(pairs, o.opts.BatchSize)
	if err != nil {
		return nil, err
	}
	summary.Batches = len(batches)

	o.out.Println("")
	o.out.Println("Creating %d batches of up to %d pairs each", len(batches), o.opts.BatchSize)

	if o.opts.DryRun {
		o.handleDryRun(pairs, batches)
		return summary, nil
	}

	for _, batch := range batches {
		if err := o.processBatch(batch); err != nil {
			return summary, common.NewBatchError(batch.Number, "processing failed", err)
		}
	}

	o.printSummary(summary)
	return summary, nil
}

// validate fails fast on invalid options before any file-system access
func (o *Organizer) validate() error {
	if err := common.ValidateBatchSize(o.opts.BatchSize); err != nil {
		return err
	}
	if err := common.ValidateFolderPrefix(o.opts.FolderPrefix); err != nil {
		return err
	}
	if err := ValidateEncoding(o.opts.Encoding); err != nil {
		return err
	}
	if strings.TrimSpace(o.opts.CombinedName) == "" {
		return errors.New("combined file name must not be empty")
	}
	return nil
}

// processBatch materializes one batch folder: idempotent folder creation,
// sequential pair transfers, then the concatenation pass.
func (o *Organizer) processBatch(batch Batch) error {
	folderName := FolderName(o.opts.FolderPrefix, batch.Number)
	batchFolder := filepath.Join(o.opts.SourceDir, folderName)

	// Reuse the folder if it already exists
	if err := os.MkdirAll(batchFolder, 0755); err != nil {
		return err
	}

	o.out.Println("")
	o.out.Println("Processing %s...", folderName)
	o.out.Println("  %s %d file pairs...", o.opts.Mode.Verb(), len(batch.Pairs))
	o.log.Debug().Int("batch", batch.Number).Int("pairs", len(batch.Pairs)).
		Str("folder", batchFolder).Msg("materializing batch")

	// Transfer the text file before the image file for each pair. A failure
	// between the two leaves the pair split across directories; the run
	// stops there with no rollback.
	for _, pair := range batch.Pairs {
		for _, src := range []string{pair.TextPath, pair.ImagePath} {
			dest, err := transferFile(src, batchFolder, o.opts.Mode)
			if err != nil {
				return err
			}
			o.out.Verboseln("  %s -> %s", src, dest)
			o.log.Debug().Str("src", src).Str("dest", dest).Msg("transferred file")
		}
	}

	o.out.Println("  Concatenating %s files...", o.opts.TextExt)
	if err := writeCombined(batchFolder, batch.Pairs, o.opts.CombinedName, o.opts.Encoding); err != nil {
		return err
	}
	o.out.Println("  Created %s with %d documents", o.opts.CombinedName, len(batch.Pairs))

	return nil
}

// handleDryRun reports the planned batches without touching the file system
func (o *Organizer) handleDryRun(pairs []FilePair, batches []Batch) {
	names := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		names = append(names, pair.BaseName())
	}

	nameBatches := make([][]string, 0, len(batches))
	for _, batch := range batches {
		batchNames := make([]string, 0, len(batch.Pairs))
		for _, pair := range batch.Pairs {
			batchNames = append(batchNames, pair.BaseName())
		}
		nameBatches = append(nameBatches, batchNames)
	}

	common.HandleDryRun(common.DryRunOptions{
		Enabled:    true,
		Verbose:    o.out.IsVerbose(),
		ItemType:   "file pairs",
		ActionVerb: o.opts.Mode.String(),
		BatchSize:  o.opts.BatchSize,
	}, names, nameBatches)
}

// printSummary prints the final run summary block
func (o *Organizer) printSummary(summary *Summary) {
	o.out.Println("")
	o.out.Println(strings.Repeat("=", 60))
	o.out.Println("Processing complete!")
	o.out.Println("Created %d batch folders", summary.Batches)
	o.out.Println("Total file pairs processed: %d", summary.Pairs)
	o.out.Println(strings.Repeat("=", 60))
}
