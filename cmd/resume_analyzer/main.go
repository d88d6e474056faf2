// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume vs job-description analysis engine",
	Long: "Resume Analyzer scores how well a resume matches a job description: " +
		"skill coverage, an ATS-style scorability score, a compatibility score " +
		"and remediation suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	env := config.FromEnv()
	logger.Init(logger.Config{Level: env.LogLevel, Format: env.LogFormat})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
