package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListFileType represents the format of a selection-list file
type ListFileType string

const (
	// ListFileTypeText indicates a text file with one name per line
	ListFileTypeText ListFileType = "text"
	// ListFileTypeCSV indicates a CSV file (first column holds the names)
	ListFileTypeCSV ListFileType = "csv"
	// ListFileTypeJSON indicates a JSON file containing an array of strings
	ListFileTypeJSON ListFileType = "json"
)

// ReadNamesFromFile reads a selection list of document base names from a file.
// The format is auto-detected from the file extension when fileTypeHint is
// empty: .json and .csv are parsed accordingly, everything else is treated
// as plain text with one name per line. Lines starting with '#' and empty
// entries are skipped, and surrounding whitespace is trimmed.
func ReadNamesFromFile(filePath string, fileTypeHint ListFileType) ([]string, error) {
	// Make sure the file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("names list file not found: %s", filePath)
	}

	// Determine file type if not provided
	fileType := fileTypeHint
	if fileType == "" {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".json":
			fileType = ListFileTypeJSON
		case ".csv":
			fileType = ListFileTypeCSV
		default:
			fileType = ListFileTypeText
		}
	}

	var names []string
	var err error

	switch fileType {
	case ListFileTypeJSON:
		names, err = readJSONNames(filePath)
	case ListFileTypeCSV:
		names, err = readCSVNames(filePath)
	default:
		names, err = readTextNames(filePath)
	}

	if err != nil {
		return nil, err
	}

	// Drop empty entries that survived parsing
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			result = append(result, name)
		}
	}

	return result, nil
}

// NameSet converts a list of names into a lookup set, preserving nothing
// but membership.
func NameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// readJSONNames reads names from a JSON array of strings
func readJSONNames(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read names list: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse JSON names list: %w", err)
	}

	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}

	return names, nil
}

// readCSVNames reads names from the first column of a CSV file
func readCSVNames(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV names list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV names list: %w", err)
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// readTextNames reads names from a text file, one per line
func readTextNames(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read names list: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	names := make([]string, 0, len(lines))

	for _, line := range lines {
		name := strings.TrimSpace(line)
		// Skip comments and empty lines
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}
