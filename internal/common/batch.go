package common

import (
	"fmt"
)

// BatchCount returns the number of batches needed to hold count items
// when splitting into batches of the specified size.
// Returns 0 when batchSize is not positive.
func BatchCount(count, batchSize int) int {
	if batchSize <= 0 {
		return 0
	}
	return (count + batchSize - 1) / batchSize
}

// SplitIntoBatches splits a slice into contiguous batches of the specified size.
// The final batch may be smaller than batchSize. Order is preserved and the
// batches together cover the input exactly. Returns nil when batchSize is
// not positive.
func SplitIntoBatches[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 {
		return nil
	}

	// Create batches
	batches := make([][]T, 0, BatchCount(len(items), batchSize))
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}

	return batches
}

// BatchError represents an error that occurred while processing one batch
type BatchError struct {
	BatchNumber int
	Message     string
	Cause       error
}

// Error implements the error interface
func (e *BatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("batch %d: %s: %v", e.BatchNumber, e.Message, e.Cause)
	}
	return fmt.Sprintf("batch %d: %s", e.BatchNumber, e.Message)
}

// Unwrap returns the underlying error
func (e *BatchError) Unwrap() error {
	return e.Cause
}

// NewBatchError creates a new batch error for the given 1-based batch number
func NewBatchError(batchNumber int, message string, cause error) *BatchError {
	return &BatchError{
		BatchNumber: batchNumber,
		Message:     message,
		Cause:       cause,
	}
}
