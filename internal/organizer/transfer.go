package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TransferMode selects how files are materialized into batch folders
type TransferMode int

const (
	// ModeCopy copies files, leaving the originals in the source directory
	ModeCopy TransferMode = iota
	// ModeMove moves files, removing the originals after a successful transfer
	ModeMove
)

// String returns a string representation of the transfer mode
func (m TransferMode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeMove:
		return "move"
	default:
		return "unknown"
	}
}

// Verb returns the progressive verb used in progress output
func (m TransferMode) Verb() string {
	if m == ModeMove {
		return "Moving"
	}
	return "Copying"
}

// ParseTransferMode converts a string to a TransferMode
func ParseTransferMode(s string) (TransferMode, error) {
	switch s {
	case "copy", "":
		return ModeCopy, nil
	case "move":
		return ModeMove, nil
	default:
		return ModeCopy, fmt.Errorf("unknown transfer mode %q, expected copy or move", s)
	}
}

// transferFile transfers a single file into destDir under its original name.
// A destination file with the same name is overwritten silently. Any failure
// is fatal to the run; no cleanup of a partial transfer is attempted.
func transferFile(src, destDir string, mode TransferMode) (string, error) {
	dest := filepath.Join(destDir, filepath.Base(src))

	if mode == ModeMove {
		if err := moveFile(src, dest); err != nil {
			return "", fmt.Errorf("failed to move %s: %w", src, err)
		}
		return dest, nil
	}

	if err := copyFile(src, dest); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return dest, nil
}

// copyFile copies src to dest, preserving the file mode and timestamps
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Preserve timestamps on the copy
	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}

// moveFile moves src to dest, falling back to copy-and-remove when a rename
// is not possible (for example across file systems).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	if err := copyFile(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}
