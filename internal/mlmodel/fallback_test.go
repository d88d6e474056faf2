package mlmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackScorer_IdenticalTexts(t *testing.T) {
	scorer := NewFallbackScorer()

	sim, level, err := scorer.ScoreAndPredict(context.Background(), "go docker kafka", "go docker kafka")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 0.001)
	assert.Equal(t, LabelSenior, level)
}

func TestFallbackScorer_DisjointTexts(t *testing.T) {
	scorer := NewFallbackScorer()

	sim, level, err := scorer.ScoreAndPredict(context.Background(), "alpha beta", "gamma delta")

	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
	assert.Equal(t, LabelReject, level)
}

func TestFallbackScorer_EmptyText(t *testing.T) {
	scorer := NewFallbackScorer()

	sim, level, err := scorer.ScoreAndPredict(context.Background(), "", "some job text")

	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
	assert.Equal(t, LabelReject, level)
}

func TestFallbackScorer_PartialOverlap(t *testing.T) {
	scorer := NewFallbackScorer()

	// 2 shared words out of 4 distinct on each side: 2/sqrt(16) = 0.5
	sim, level, err := scorer.ScoreAndPredict(context.Background(),
		"go docker one two", "go docker three four")

	require.NoError(t, err)
	assert.InDelta(t, 0.5, sim, 0.001)
	assert.Equal(t, LabelJunior, level)
}

func TestFallbackScorer_CaseInsensitive(t *testing.T) {
	scorer := NewFallbackScorer()

	sim, _, err := scorer.ScoreAndPredict(context.Background(), "GO DOCKER", "go docker")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 0.001)
}

func TestLevelForSimilarity_Bands(t *testing.T) {
	assert.Equal(t, LabelSenior, levelForSimilarity(0.71))
	assert.Equal(t, LabelMid, levelForSimilarity(0.7))
	assert.Equal(t, LabelMid, levelForSimilarity(0.51))
	assert.Equal(t, LabelJunior, levelForSimilarity(0.5))
	assert.Equal(t, LabelJunior, levelForSimilarity(0.31))
	assert.Equal(t, LabelReject, levelForSimilarity(0.3))
	assert.Equal(t, LabelReject, levelForSimilarity(0.0))
}

func TestSelect_NoAPIKeyUsesFallback(t *testing.T) {
	scorer, err := Select(context.Background(), "", "")

	require.NoError(t, err)
	assert.IsType(t, &FallbackScorer{}, scorer)
}
