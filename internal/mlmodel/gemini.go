package mlmodel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-analyzer/internal/llm"
)

// geminiPrompt asks for exactly the two values the port contract defines
const geminiPrompt = `You are scoring how well a resume matches a job description.
Return a JSON object with exactly these fields:
  "similarity": a number between 0.0 and 1.0
  "level": one of "Junior", "Mid", "Senior", "Reject"

Job description:
%s

Resume:
%s`

// geminiPrediction is the JSON shape the model is asked to produce
type geminiPrediction struct {
	Similarity float64 `json:"similarity"`
	Level      string  `json:"level"`
}

// GeminiScorer is the LLM-backed scorer used when an API key is configured.
// Its score and label pass through unchanged; on any API or parse failure it
// degrades to the deterministic fallback instead of failing the analysis.
type GeminiScorer struct {
	client   llm.Client
	fallback *FallbackScorer
}

// NewGeminiScorer creates the LLM-backed scorer. Failing to construct the
// client is a startup error, not a runtime one.
func NewGeminiScorer(ctx context.Context, apiKey, model string) (*GeminiScorer, error) {
	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer client: %w", err)
	}
	return &GeminiScorer{client: client, fallback: NewFallbackScorer()}, nil
}

// ScoreAndPredict queries the model and passes its output through unchanged
func (s *GeminiScorer) ScoreAndPredict(ctx context.Context, resumeText, jobText string) (float64, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, LabelReject, err
	}

	raw, err := s.client.GenerateJSON(ctx, fmt.Sprintf(geminiPrompt, jobText, resumeText))
	if err != nil {
		log.Warn().Err(err).Msg("LLM scorer failed, using fallback")
		return s.fallback.ScoreAndPredict(ctx, resumeText, jobText)
	}

	var pred geminiPrediction
	if err := json.Unmarshal([]byte(raw), &pred); err != nil {
		log.Warn().Err(err).Msg("LLM scorer returned unparseable JSON, using fallback")
		return s.fallback.ScoreAndPredict(ctx, resumeText, jobText)
	}

	if pred.Similarity < 0 {
		pred.Similarity = 0
	}
	if pred.Similarity > 1 {
		pred.Similarity = 1
	}
	return pred.Similarity, pred.Level, nil
}

// Close releases the underlying client
func (s *GeminiScorer) Close() error {
	return s.client.Close()
}
