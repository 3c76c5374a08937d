package organizer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stagePairs writes text documents into a batch folder and returns the
// corresponding pairs, as they would look after materialization.
func stagePairs(t *testing.T, folder string, docs map[string]string) []FilePair {
	t.Helper()

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	// Deterministic batch order
	sort.Strings(names)

	pairs := make([]FilePair, 0, len(names))
	for _, name := range names {
		path := filepath.Join(folder, name+".txt")
		require.NoError(t, os.WriteFile(path, []byte(docs[name]), 0644))
		pairs = append(pairs, FilePair{TextPath: path, ImagePath: filepath.Join(folder, name+".jpg")})
	}
	return pairs
}

func TestWriteCombined(t *testing.T) {
	folder := t.TempDir()
	pairs := stagePairs(t, folder, map[string]string{
		"a": "first document",
		"b": "second document",
		"c": "third document",
	})

	require.NoError(t, writeCombined(folder, pairs, "combined.txt", "utf-8"))

	data, err := os.ReadFile(filepath.Join(folder, "combined.txt"))
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, "first document\nTRP_PAGEBREAK\nsecond document\nTRP_PAGEBREAK\nthird document", content)
	// Separators strictly between documents: count = documents - 1
	assert.Equal(t, 2, strings.Count(content, Separator))
	assert.False(t, strings.HasPrefix(content, "\n"+Separator))
	assert.False(t, strings.HasSuffix(content, Separator+"\n"))
}

func TestWriteCombinedSingleDocument(t *testing.T) {
	folder := t.TempDir()
	pairs := stagePairs(t, folder, map[string]string{"only": "lonely content"})

	require.NoError(t, writeCombined(folder, pairs, "combined.txt", "utf-8"))

	data, err := os.ReadFile(filepath.Join(folder, "combined.txt"))
	require.NoError(t, err)
	assert.Equal(t, "lonely content", string(data))
	assert.NotContains(t, string(data), Separator)
}

func TestWriteCombinedOverwritesPrior(t *testing.T) {
	folder := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "combined.txt"), []byte("stale"), 0644))
	pairs := stagePairs(t, folder, map[string]string{"a": "fresh"})

	require.NoError(t, writeCombined(folder, pairs, "combined.txt", "utf-8"))

	data, err := os.ReadFile(filepath.Join(folder, "combined.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestWriteCombinedInvalidUTF8(t *testing.T) {
	folder := t.TempDir()
	path := filepath.Join(folder, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xFE, 0xFD}, 0644))
	pairs := []FilePair{{TextPath: path, ImagePath: filepath.Join(folder, "bad.jpg")}}

	err := writeCombined(folder, pairs, "combined.txt", "utf-8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestWriteCombinedLatin1(t *testing.T) {
	folder := t.TempDir()
	// 0xE9 is "é" in Latin-1 but invalid on its own in UTF-8
	path := filepath.Join(folder, "fr.txt")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0644))
	pairs := []FilePair{{TextPath: path, ImagePath: filepath.Join(folder, "fr.jpg")}}

	require.NoError(t, writeCombined(folder, pairs, "combined.txt", "latin-1"))

	data, err := os.ReadFile(filepath.Join(folder, "combined.txt"))
	require.NoError(t, err)
	// Written back in the same encoding
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, data)
}

func TestWriteCombinedMissingDocument(t *testing.T) {
	folder := t.TempDir()
	pairs := []FilePair{{TextPath: filepath.Join(folder, "missing.txt"), ImagePath: filepath.Join(folder, "missing.jpg")}}

	err := writeCombined(folder, pairs, "combined.txt", "utf-8")
	require.Error(t, err)
}

func TestValidateEncoding(t *testing.T) {
	assert.NoError(t, ValidateEncoding("utf-8"))
	assert.NoError(t, ValidateEncoding("latin-1"))
	assert.NoError(t, ValidateEncoding("windows-1252"))
	assert.Error(t, ValidateEncoding("ebcdic"))
}
