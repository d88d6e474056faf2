package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/mlmodel"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeFlags struct {
	resume     string
	job        string
	jobURL     string
	name       string
	email      string
	language   string
	configPath string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Run one analysis: extract the candidate profile and structured records
from the resume, match skills against the job description, and print the
scored result as JSON.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.resume, "resume", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.job, "job", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeFlags.jobURL, "job-url", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVar(&analyzeFlags.name, "name", "", "Candidate name (extracted from resume when omitted)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.email, "email", "", "Candidate email (extracted from resume when omitted)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.language, "language", "", "Language hint: en or fr")
	analyzeCmd.Flags().StringVar(&analyzeFlags.configPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(analyzeCmd)
}

// resolveConfig layers CLI flags over the config file over the environment
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		Resume:   analyzeFlags.resume,
		Job:      analyzeFlags.job,
		JobURL:   analyzeFlags.jobURL,
		Name:     analyzeFlags.name,
		Email:    analyzeFlags.email,
		Language: analyzeFlags.language,
	}

	if analyzeFlags.configPath != "" {
		fileCfg, err := config.LoadConfig(analyzeFlags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("one of --job or --job-url is required")
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ExtractTextFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingestion.FetchJobPosting(ctx, cfg.JobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	} else {
		jobText, err = ingestion.ExtractTextFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job posting: %w", err)
		}
	}

	scorer, err := mlmodel.Select(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to select scorer: %w", err)
	}

	a := analyzer.New(skills.NewDictionary(), scorer)
	req := analyzer.Request{
		CandidateName:  cfg.Name,
		CandidateEmail: cfg.Email,
		JobText:        jobText,
		ResumeText:     resumeText,
		Language:       cfg.Language,
	}
	result, err := a.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	saveAnalysis(ctx, cfg, req, result)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// saveAnalysis persists the run when a database is configured. Failures are
// logged, never fatal: the result has already been computed.
func saveAnalysis(ctx context.Context, cfg config.Config, req analyzer.Request, result *types.AnalysisResult) {
	if cfg.DatabaseURL == "" {
		return
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("database unavailable, skipping persistence")
		return
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		logger.Warn().Err(err).Msg("schema setup failed, skipping persistence")
		return
	}

	profile := &types.CandidateProfile{
		ID:       result.ResumeID,
		Name:     result.ExtractedName,
		Email:    result.ExtractedEmail,
		Language: req.Language,
		RawText:  req.ResumeText,
	}
	job := &types.JobDescription{
		ID:              result.JobID,
		Title:           req.JobTitle,
		DescriptionText: req.JobText,
		Language:        req.Language,
	}

	if err := database.SaveResume(ctx, profile); err != nil {
		logger.Warn().Err(err).Msg("persisting resume failed")
		return
	}
	if err := database.SaveJob(ctx, job); err != nil {
		logger.Warn().Err(err).Msg("persisting job failed")
		return
	}
	if id, err := database.SaveAnalysis(ctx, result); err != nil {
		logger.Warn().Err(err).Msg("persisting analysis failed")
	} else {
		logger.Info().Str("analysis_id", id.String()).Msg("analysis saved")
	}
}
