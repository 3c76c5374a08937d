package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator is the literal token written on its own line between
// concatenated documents in the combined text file.
const Separator = "TRP_PAGEBREAK"

// writeCombined writes the combined text file for one batch. The text
// documents are read from the batch folder (they have already been
// transferred there, which keeps move mode working), decoded with the
// configured encoding, and concatenated in batch order with the separator
// strictly between consecutive documents. Any prior combined file content
// is overwritten.
func writeCombined(batchFolder string, pairs []FilePair, combinedName, encodingName string) error {
	var combined strings.Builder

	for i, pair := range pairs {
		textPath := filepath.Join(batchFolder, filepath.Base(pair.TextPath))

		data, err := os.ReadFile(textPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", textPath, err)
		}

		content, err := decodeText(data, encodingName)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", textPath, err)
		}

		combined.WriteString(content)

		// Separator between documents only, never after the last one
		if i < len(pairs)-1 {
			combined.WriteString("\n" + Separator + "\n")
		}
	}

	encoded, err := encodeText(combined.String(), encodingName)
	if err != nil {
		return err
	}

	combinedPath := filepath.Join(batchFolder, combinedName)
	if err := os.WriteFile(combinedPath, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", combinedPath, err)
	}

	return nil
}
