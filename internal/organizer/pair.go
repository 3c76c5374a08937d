package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilePair is one logical document: a text file and its same-named image file.
// Both paths exist at pairing time.
type FilePair struct {
	TextPath  string `json:"text_path"`
	ImagePath string `json:"image_path"`
}

// BaseName returns the shared base name of the pair without extension
func (p FilePair) BaseName() string {
	name := filepath.Base(p.TextPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ScanResult holds the outcome of scanning a source directory
type ScanResult struct {
	// Pairs is the complete file pairs in lexicographic order of the text file name
	Pairs []FilePair `json:"pairs"`
	// Unmatched is the text file names that had no matching image file
	Unmatched []string `json:"unmatched,omitempty"`
	// TextFileCount is the total number of text files seen
	TextFileCount int `json:"text_file_count"`
}

// Discover scans sourceDir for text files with textExt and pairs each with
// the image file sharing its base name. Text files without a matching image
// are recorded in Unmatched and excluded from the pairs. The pair order is
// deterministic: lexicographic ascending by file name. Entries inside
// subdirectories are not considered.
func Discover(sourceDir, textExt, imageExt string) (*ScanResult, error) {
	info, err := os.Stat(sourceDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory %s does not exist", sourceDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", sourceDir)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", sourceDir, err)
	}

	// Collect text file names first so the processing order is fixed before
	// any pairing decisions. os.ReadDir returns entries sorted by name, the
	// explicit sort keeps that a guarantee rather than an accident.
	textNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), textExt) {
			textNames = append(textNames, entry.Name())
		}
	}
	sort.Strings(textNames)

	result := &ScanResult{TextFileCount: len(textNames)}

	for _, textName := range textNames {
		imageName := strings.TrimSuffix(textName, textExt) + imageExt
		imagePath := filepath.Join(sourceDir, imageName)

		if _, err := os.Stat(imagePath); err != nil {
			result.Unmatched = append(result.Unmatched, textName)
			continue
		}

		result.Pairs = append(result.Pairs, FilePair{
			TextPath:  filepath.Join(sourceDir, textName),
			ImagePath: imagePath,
		})
	}

	return result, nil
}

// FilterByNames returns the pairs whose base name appears in the given set.
// A nil or empty set keeps every pair.
func FilterByNames(pairs []FilePair, names map[string]bool) []FilePair {
	if len(names) == 0 {
		return pairs
	}

	filtered := make([]FilePair, 0, len(pairs))
	for _, pair := range pairs {
		if names[pair.BaseName()] {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}
