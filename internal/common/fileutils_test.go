package common

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeListFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write list file: %v", err)
	}
	return path
}

func TestReadNamesFromFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		expected []string
	}{
		{
			name:     "Text with comments and blanks",
			fileName: "names.txt",
			content:  "page_001\n\n# a comment\n  page_002  \n",
			expected: []string{"page_001", "page_002"},
		},
		{
			name:     "JSON array of strings",
			fileName: "names.json",
			content:  `["page_001", " page_002 "]`,
			expected: []string{"page_001", "page_002"},
		},
		{
			name:     "CSV first column",
			fileName: "names.csv",
			content:  "page_001,extra\npage_002,other\n",
			expected: []string{"page_001", "page_002"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeListFile(t, tc.fileName, tc.content)
			got, err := ReadNamesFromFile(path, "")
			if err != nil {
				t.Fatalf("ReadNamesFromFile failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestReadNamesFromFileMissing(t *testing.T) {
	_, err := ReadNamesFromFile(filepath.Join(t.TempDir(), "nope.txt"), "")
	if err == nil {
		t.Errorf("Expected error for missing names list")
	}
}

func TestReadNamesFromFileBadJSON(t *testing.T) {
	path := writeListFile(t, "broken.json", `{"not": "an array"}`)
	if _, err := ReadNamesFromFile(path, ""); err == nil {
		t.Errorf("Expected error for JSON that is not an array of strings")
	}
}

func TestNameSet(t *testing.T) {
	set := NameSet([]string{"a", "b", "a"})
	if len(set) != 2 {
		t.Errorf("Expected 2 unique names, got %d", len(set))
	}
	if !set["a"] || !set["b"] {
		t.Errorf("Expected both names present in the set")
	}
	if set["c"] {
		t.Errorf("Did not expect name c in the set")
	}
}
