// Package ingestion turns caller-supplied inputs (uploaded documents, pasted
// text, job posting URLs) into the plain text the analysis engine consumes.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	interiorSpaceRun = regexp.MustCompile(`[ \t]+`)
	blankLineRun     = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw resume or job text while preserving the line
// structure the section segmenter depends on: CRLF to LF, trailing whitespace
// trimmed, interior space runs collapsed, at most two consecutive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses interior space runs. Bullet markers and
// their indentation survive so experience extraction still sees them.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := ""
	if isBulletLine(trimmed) {
		indent = line[:len(line)-len(trimmed)]
	}
	return indent + interiorSpaceRun.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}
