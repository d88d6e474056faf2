// Package sections locates named sections (experience, education, ...)
// inside raw resume text using bilingual header vocabularies. Everything here
// is a pure function over the input text; a section that cannot be found is
// an empty string, never an error.
package sections

import "strings"

// A header only counts if it starts a line: the preceding newline must be
// absent or within this many characters of the match. Suppresses headers
// embedded mid-sentence.
const lineStartSlack = 10

// Characters skipped past the opening header before scanning for the section
// end, so the end search cannot collide with the opening header itself.
const endScanOffset = 3

// ExtractSection returns the trimmed substring between the first matching
// header synonym and the next known section header, or the end of text.
// Returns "" when no synonym is found.
func ExtractSection(text string, headerSynonyms []string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lower := strings.ToLower(text)

	for _, synonym := range headerSynonyms {
		header := strings.ToLower(synonym)
		idx := indexAtLineStart(lower, header, 0)
		if idx < 0 {
			continue
		}

		start := idx + len(header)
		end := len(text)

		searchFrom := start + endScanOffset
		if searchFrom > len(lower) {
			searchFrom = len(lower)
		}
		for _, other := range boundaryHeaders {
			boundary := strings.ToLower(other)
			if boundary == header {
				continue
			}
			bidx := indexAtLineStart(lower, boundary, searchFrom)
			if bidx >= 0 && bidx < end {
				end = bidx
			}
		}

		if end < start {
			end = start
		}
		// Headers are often written "SKILLS:"; the colon sits after the
		// matched synonym and is not part of the section body.
		return strings.TrimSpace(strings.TrimLeft(text[start:end], ": \t\r\n"))
	}
	return ""
}

// indexAtLineStart finds the first occurrence of header at or after from that
// satisfies the line-start heuristic. Returns -1 if none exists.
func indexAtLineStart(lowerText, header string, from int) int {
	if header == "" || from >= len(lowerText) {
		return -1
	}
	search := from
	for {
		rel := strings.Index(lowerText[search:], header)
		if rel < 0 {
			return -1
		}
		idx := search + rel
		nl := strings.LastIndex(lowerText[:idx], "\n")
		if nl < 0 || idx-(nl+1) <= lineStartSlack {
			return idx
		}
		search = idx + 1
	}
}
