package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestGenerate_MissingSkillsAndLowScore(t *testing.T) {
	out := Generate([]string{"c#", "react", "docker"}, 40)

	require.Len(t, out, 2)
	assert.Equal(t, types.SuggestionCategorySkills, out[0].Category)
	assert.Equal(t, "Add the following skills: c#, react, docker", out[0].SuggestedText)
	assert.Equal(t, types.SuggestionCategoryATS, out[1].Category)
}

func TestGenerate_NoMissingSkillsHighScore(t *testing.T) {
	assert.Empty(t, Generate(nil, 90))
}

func TestGenerate_HighScoreSkipsStructureItem(t *testing.T) {
	out := Generate([]string{"go"}, 85)

	require.Len(t, out, 1)
	assert.Equal(t, types.SuggestionCategorySkills, out[0].Category)
}

func TestGenerate_LowScoreOnly(t *testing.T) {
	out := Generate(nil, 30)

	require.Len(t, out, 1)
	assert.Equal(t, types.SuggestionCategoryATS, out[0].Category)
}

func TestGenerate_ThresholdIsExclusive(t *testing.T) {
	assert.Empty(t, Generate(nil, LowScorabilityThreshold))
	assert.Len(t, Generate(nil, LowScorabilityThreshold-0.01), 1)
}

func TestGenerate_CapsNamedSkills(t *testing.T) {
	missing := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}
	out := Generate(missing, 90)

	require.Len(t, out, 1)
	assert.Equal(t, "Add the following skills: a1, b2, c3, d4, e5", out[0].SuggestedText)
}

func TestGenerate_NeverMoreThanOnePerCategory(t *testing.T) {
	out := Generate([]string{"c#", "react", "kafka"}, 10)

	counts := map[string]int{}
	for _, s := range out {
		counts[s.Category]++
	}
	assert.Equal(t, 1, counts[types.SuggestionCategorySkills])
	assert.Equal(t, 1, counts[types.SuggestionCategoryATS])
}
