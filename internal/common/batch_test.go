package common

import (
	"errors"
	"testing"
)

func TestSplitIntoBatches(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		batchSize int
		expected  int
	}{
		{
			name:      "Empty slice",
			items:     []string{},
			batchSize: 3,
			expected:  0,
		},
		{
			name:      "Exact batches",
			items:     []string{"a", "b", "c", "d", "e", "f"},
			batchSize: 3,
			expected:  2,
		},
		{
			name:      "Partial last batch",
			items:     []string{"a", "b", "c", "d", "e", "f", "g"},
			batchSize: 3,
			expected:  3,
		},
		{
			name:      "Single batch",
			items:     []string{"a", "b"},
			batchSize: 3,
			expected:  1,
		},
		{
			name:      "Non-positive batch size",
			items:     []string{"a", "b"},
			batchSize: 0,
			expected:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SplitIntoBatches(tc.items, tc.batchSize)
			if len(result) != tc.expected {
				t.Errorf("Expected %d batches, got %d", tc.expected, len(result))
			}

			// Check that all items are accounted for, in order
			var flattened []string
			for _, batch := range result {
				flattened = append(flattened, batch...)
			}
			if tc.batchSize > 0 {
				if len(flattened) != len(tc.items) {
					t.Errorf("Expected %d total items, got %d", len(tc.items), len(flattened))
				}
				for i, item := range flattened {
					if item != tc.items[i] {
						t.Errorf("Expected item %q at position %d, got %q", tc.items[i], i, item)
					}
				}
			}
		})
	}
}

func TestBatchCount(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		batchSize int
		expected  int
	}{
		{name: "Zero items", count: 0, batchSize: 10, expected: 0},
		{name: "Exact multiple", count: 500, batchSize: 250, expected: 2},
		{name: "Remainder rounds up", count: 501, batchSize: 250, expected: 3},
		{name: "Fewer items than batch size", count: 3, batchSize: 250, expected: 1},
		{name: "Non-positive batch size", count: 10, batchSize: 0, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BatchCount(tc.count, tc.batchSize); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestBatchError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewBatchError(3, "transfer failed", cause)

	expected := "batch 3: transfer failed: disk full"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, cause) {
		t.Errorf("Expected the batch error to unwrap to its cause")
	}

	// Without a cause, only the message appears
	bare := NewBatchError(1, "folder creation failed", nil)
	if bare.Error() != "batch 1: folder creation failed" {
		t.Errorf("Unexpected message without cause: %q", bare.Error())
	}
}
