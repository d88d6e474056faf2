// Package mlmodel provides the similarity-and-level port: given a resume and
// a job description, produce a similarity score in [0,1] and a candidate
// level label. Two implementations exist, a deterministic bag-of-words
// fallback and an optional LLM-backed scorer, selected once at startup.
package mlmodel

import "context"

// Level labels a scorer may return. The scoring engine maps anything outside
// this set to Reject.
const (
	LabelJunior = "Junior"
	LabelMid    = "Mid"
	LabelSenior = "Senior"
	LabelReject = "Reject"
)

// Scorer scores a (resume, job) text pair
type Scorer interface {
	// ScoreAndPredict returns a similarity in [0,1] and a level label.
	// Implementations never fail for normal input; the error is reserved
	// for context cancellation.
	ScoreAndPredict(ctx context.Context, resumeText, jobText string) (float64, string, error)
}

// Select picks the scorer implementation at startup: the LLM-backed scorer
// when an API key is configured, the deterministic fallback otherwise.
func Select(ctx context.Context, apiKey, model string) (Scorer, error) {
	if apiKey == "" {
		return NewFallbackScorer(), nil
	}
	return NewGeminiScorer(ctx, apiKey, model)
}
