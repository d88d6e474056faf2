package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	got, err := ExtractText([]byte("Jane Smith\r\njane@x.com"), "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\njane@x.com", got)
}

func TestExtractText_MarkdownAndNoExtension(t *testing.T) {
	for _, name := range []string{"resume.md", "resume"} {
		got, err := ExtractText([]byte("hello"), name)
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	for _, name := range []string{"resume.pdf", "resume.docx", "resume.PDF"} {
		_, err := ExtractText([]byte{0x25, 0x50}, name)

		var unsupported *ErrUnsupportedDocument
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, name, unsupported.Filename)
	}
}

func TestExtractText_InvalidUTF8DegradesToEmpty(t *testing.T) {
	got, err := ExtractText([]byte{0xff, 0xfe, 0x00}, "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestExtractTextFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane  Smith\n"), 0o644))

	got, err := ExtractTextFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got)
}

func TestExtractTextFromFile_Missing(t *testing.T) {
	_, err := ExtractTextFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
