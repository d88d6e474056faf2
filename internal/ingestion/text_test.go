package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanText_CollapsesSpaceRuns(t *testing.T) {
	assert.Equal(t, "Software Engineer | Acme", CleanText("Software   Engineer \t|  Acme"))
}

func TestCleanText_CapsBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_PreservesBulletIndent(t *testing.T) {
	got := CleanText("EXPERIENCE\n  - Built   APIs\n  - Led team")
	assert.Equal(t, "EXPERIENCE\n  - Built APIs\n  - Led team", got)
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "line", CleanText("line   \t\n\n"))
}
