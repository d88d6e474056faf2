package mlmodel

import (
	"context"
	"math"
	"strings"
)

// Similarity thresholds for the fallback level bands
const (
	seniorThreshold = 0.7
	midThreshold    = 0.5
	juniorThreshold = 0.3
)

// FallbackScorer is the deterministic scorer used when no trained model is
// configured. It computes bag-of-words cosine similarity over 0/1 presence
// vectors and maps the score to a level through fixed thresholds. Pure CPU
// work, no I/O, safe for concurrent use.
type FallbackScorer struct{}

// NewFallbackScorer creates the deterministic fallback scorer
func NewFallbackScorer() *FallbackScorer {
	return &FallbackScorer{}
}

// ScoreAndPredict computes cosine similarity and the corresponding level band
func (s *FallbackScorer) ScoreAndPredict(_ context.Context, resumeText, jobText string) (float64, string, error) {
	similarity := cosineSimilarity(resumeText, jobText)
	return similarity, levelForSimilarity(similarity), nil
}

// levelForSimilarity maps a similarity score to a level label
func levelForSimilarity(similarity float64) string {
	switch {
	case similarity > seniorThreshold:
		return LabelSenior
	case similarity > midThreshold:
		return LabelMid
	case similarity > juniorThreshold:
		return LabelJunior
	default:
		return LabelReject
	}
}

// cosineSimilarity computes cosine similarity between the bags of distinct
// lower-cased words of the two texts. With 0/1 presence vectors this reduces
// to |A ∩ B| / sqrt(|A| * |B|); a zero-magnitude vector yields 0.
func cosineSimilarity(text1, text2 string) float64 {
	words1 := distinctWords(text1)
	words2 := distinctWords(text2)

	if len(words1) == 0 || len(words2) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			intersection++
		}
	}

	return float64(intersection) / math.Sqrt(float64(len(words1))*float64(len(words2)))
}

// distinctWords builds the set of distinct lower-cased whitespace-separated words
func distinctWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}
	return words
}
