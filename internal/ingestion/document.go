package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedDocument is returned for document types the extractor cannot
// decode. Unknown extensions are a reported error, not a silent skip.
type ErrUnsupportedDocument struct {
	Filename  string
	Extension string
}

func (e *ErrUnsupportedDocument) Error() string {
	return fmt.Sprintf("unsupported document type %q for %s", e.Extension, e.Filename)
}

// textExtensions are the document types decoded directly as plain text
var textExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
	"":     {},
}

// ExtractText decodes an uploaded document into plain text. Plain-text
// formats are decoded in place; binary formats (PDF, Word) require an external
// converter and are rejected with ErrUnsupportedDocument. A document that
// decodes to garbage degrades to an empty string rather than failing.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := textExtensions[ext]; !ok {
		return "", &ErrUnsupportedDocument{Filename: filename, Extension: ext}
	}
	if !utf8.Valid(data) {
		return "", nil
	}
	return CleanText(string(data)), nil
}

// ExtractTextFromFile reads a document from disk and decodes it
func ExtractTextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return ExtractText(data, filepath.Base(path))
}
