package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// OutputFormat defines the format for command output
type OutputFormat string

const (
	// OutputFormatText is the standard human-readable text format
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON is the JSON format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatTable is the tabular format
	OutputFormatTable OutputFormat = "table"
)

// ParseOutputFormat validates an output format string
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatText, OutputFormatJSON, OutputFormatTable:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected text, json, or table", s)
	}
}

// OutputJSON marshals the given data to indented JSON and prints it to stdout
func OutputJSON(data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

// FormatTable prints tabular data with aligned columns.
// headers is the column headers, rows the row data.
func FormatTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	// Separator line sized to each header
	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}
