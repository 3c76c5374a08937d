package common

import (
	"fmt"
)

// DryRunOptions contains options for handling dry run behavior
type DryRunOptions struct {
	// Enabled indicates whether dry run mode is active
	Enabled bool

	// Verbose enables listing every item instead of a sample
	Verbose bool

	// ItemType is the type of items being processed (e.g., "file pairs")
	ItemType string

	// ActionVerb is the action being performed (e.g., "copy", "move")
	ActionVerb string

	// BatchSize is the configured batch size
	BatchSize int
}

// HandleDryRun reports what a run would do without mutating anything.
// Returns true if execution should continue (false when in dry run mode).
func HandleDryRun(opts DryRunOptions, items []string, batches [][]string) bool {
	if !opts.Enabled {
		return true
	}

	fmt.Printf("DRY RUN: Would %s %d %s", opts.ActionVerb, len(items), opts.ItemType)
	if len(batches) > 1 {
		fmt.Printf(" in %d batches (batch size: %d)", len(batches), opts.BatchSize)
	}
	fmt.Println()

	if opts.Verbose {
		// List every item, grouped by batch
		for i, batch := range batches {
			fmt.Printf("Batch %d: %d %s\n", i+1, len(batch), opts.ItemType)
			for j, item := range batch {
				fmt.Printf("  %d. %s\n", j+1, item)
			}
		}
	} else {
		displaySampleItems(items, batches)
	}

	fmt.Printf("DRY RUN SUMMARY: Would %s %d %s across %d batches\n",
		opts.ActionVerb, len(items), opts.ItemType, len(batches))

	// Return false to indicate processing should stop (dry run only)
	return false
}

// displaySampleItems shows a representative sample from the first and last batch
func displaySampleItems(items []string, batches [][]string) {
	if len(batches) == 0 {
		return
	}

	first := batches[0]
	fmt.Printf("First batch: %d items\n", len(first))
	showCount := 3
	if len(first) < showCount {
		showCount = len(first)
	}
	for i := 0; i < showCount; i++ {
		fmt.Printf("  %d. %s\n", i+1, first[i])
	}
	if len(first) > showCount {
		fmt.Printf("  ... and %d more items in this batch\n", len(first)-showCount)
	}

	if len(batches) > 1 {
		last := batches[len(batches)-1]
		fmt.Printf("Last batch: %d items\n", len(last))
		showCount = 2
		if len(last) < showCount {
			showCount = len(last)
		}
		for i := 0; i < showCount; i++ {
			fmt.Printf("  %d. %s\n", i+1, last[i])
		}
		if len(last) > showCount {
			fmt.Printf("  ... and %d more items in this batch\n", len(last)-showCount)
		}
	}
}
