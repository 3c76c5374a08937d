package common

import (
	"fmt"
	"os"
	"strings"
)

// ValidateSourceDir ensures the given path exists and is a directory.
// It is checked before any file-system mutation so a bad path aborts
// the run cleanly.
func ValidateSourceDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to access directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// ValidateBatchSize ensures the batch size is a positive integer
func ValidateBatchSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be a positive integer, got %d", size)
	}
	return nil
}

// NormalizeExtension validates a file extension and ensures it carries a
// leading dot. An empty extension is rejected.
func NormalizeExtension(ext string) (string, error) {
	ext = strings.TrimSpace(ext)
	if ext == "" || ext == "." {
		return "", fmt.Errorf("file extension must not be empty")
	}

	// Auto-add the leading dot if missing
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext, nil
}

// ValidateFolderPrefix ensures the batch folder prefix is usable as a
// directory name component.
func ValidateFolderPrefix(prefix string) error {
	if strings.TrimSpace(prefix) == "" {
		return fmt.Errorf("folder prefix must not be empty")
	}
	if strings.ContainsAny(prefix, `/\`) {
		return fmt.Errorf("folder prefix must not contain path separators: %q", prefix)
	}
	return nil
}
