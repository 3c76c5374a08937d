package organizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// lookupEncoding resolves a text encoding name to its implementation.
// The same encoding is used for reading source documents and writing the
// combined file.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "":
		return unicode.UTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown text encoding %q", name)
	}
}

// decodeText decodes raw file bytes using the named encoding. A byte
// sequence that is not valid in the encoding aborts the run.
func decodeText(data []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	// The UTF-8 decoder substitutes invalid bytes instead of failing, so
	// validity has to be checked up front.
	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("content is not valid UTF-8")
		}
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s content: %w", name, err)
	}
	return string(decoded), nil
}

// encodeText encodes text back into the named encoding for writing
func encodeText(text, name string) ([]byte, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	if enc == unicode.UTF8 {
		return []byte(text), nil
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode content as %s: %w", name, err)
	}
	return encoded, nil
}

// ValidateEncoding checks that the named encoding is supported
func ValidateEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}
