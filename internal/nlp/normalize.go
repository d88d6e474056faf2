// Package nlp provides the lightweight text normalization used for skill
// matching: lower-casing, punctuation stripping, stop-word removal and a
// minimal suffix stripper. It performs no real natural-language understanding.
package nlp

import (
	"strings"
	"unicode"
)

// Characters that survive punctuation stripping in addition to letters and
// digits, so dictionary terms like "c#", "c++", ".net" and "node.js" stay
// intact through tokenization.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '#' || r == '+' || r == '.'
}

// Normalize tokenizes and normalizes free text for the given language tag.
// The result is deterministic for identical inputs and an empty slice for
// blank input. Safe for concurrent use; no state is shared between calls.
func Normalize(text, language string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lowered := strings.ToLower(text)

	// Replace everything outside the token alphabet with spaces
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if isTokenRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	stopWords := stopWordsFor(language)

	tokens := make([]string, 0, 64)
	for _, raw := range strings.Fields(b.String()) {
		// Sentence-final dots are noise; a leading dot is part of terms
		// like ".net" and is kept.
		token := strings.TrimRight(raw, ".")
		if token == "" {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		token = stripSuffix(token)
		if len(token) <= 1 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// stripSuffix applies the minimal lemmatization rules: the first matching
// suffix rule wins.
func stripSuffix(token string) string {
	switch {
	case strings.HasSuffix(token, "ing") && len(token) > 4:
		return token[:len(token)-3]
	case strings.HasSuffix(token, "ed") && len(token) > 3:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return token[:len(token)-1]
	}
	return token
}

// WordCount counts whitespace-separated words in raw text
func WordCount(text string) int {
	return len(strings.Fields(text))
}
