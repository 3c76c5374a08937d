package organizer

import (
	"fmt"

	"batch-organizer/internal/common"
)

// Batch is a contiguous group of file pairs destined for one batch folder
type Batch struct {
	// Number is the 1-based batch number
	Number int
	// Pairs is the pairs in this batch, in discovery order
	Pairs []FilePair
}

// Partition splits the ordered pair list into contiguous batches of up to
// batchSize pairs. The final batch may be smaller. Batch numbers start at 1.
// A non-positive batch size is rejected before any work happens.
func Partition(pairs []FilePair, batchSize int) ([]Batch, error) {
	if err := common.ValidateBatchSize(batchSize); err != nil {
		return nil, err
	}

	chunks := common.SplitIntoBatches(pairs, batchSize)
	batches := make([]Batch, 0, len(chunks))
	for i, chunk := range chunks {
		batches = append(batches, Batch{
			Number: i + 1,
			Pairs:  chunk,
		})
	}

	return batches, nil
}

// FolderName returns the batch folder name for the given 1-based batch
// number, zero-padded to at least two digits (Batch_01, Batch_02, ...,
// Batch_100).
func FolderName(prefix string, number int) string {
	return fmt.Sprintf("%s_%02d", prefix, number)
}
