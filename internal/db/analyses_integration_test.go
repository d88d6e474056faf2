package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// connectTestDB skips the test unless TEST_DATABASE_URL points at a reachable
// PostgreSQL instance.
func connectTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}
	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, database.EnsureSchema(context.Background()))
	return database
}

func TestSaveAndGetAnalysis(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	profile := types.NewCandidateProfile("Jane Smith", "jane@x.com", "resume text", "en")
	job := types.NewJobDescription("Engineer", "job text", "en")
	require.NoError(t, database.SaveResume(ctx, profile))
	require.NoError(t, database.SaveJob(ctx, job))

	result := &types.AnalysisResult{
		ResumeID:             profile.ID,
		JobID:                job.ID,
		CompatibilityScore:   55.5,
		SkillMatchPercentage: 50,
		ATSScore:             40,
		PredictedLevel:       types.LevelMid,
		MissingSkills:        []string{"react"},
	}
	id, err := database.SaveAnalysis(ctx, result)
	require.NoError(t, err)

	stored, err := database.GetAnalysis(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 55.5, stored.Result.CompatibilityScore)
	assert.Equal(t, types.LevelMid, stored.Result.PredictedLevel)
	assert.Equal(t, []string{"react"}, stored.Result.MissingSkills)

	list, err := database.ListAnalyses(ctx, profile.ID, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}

func TestGetAnalysis_Missing(t *testing.T) {
	database := connectTestDB(t)

	stored, err := database.GetAnalysis(context.Background(), types.NewCandidateProfile("", "", "", "en").ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
