package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/pipeline"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume into a structured candidate profile",
	Long:  "Parse a plain-text resume into a structured profile JSON (work experience, skills, education, achievements) enriched with accomplishment embeddings for semantic matching.",
	RunE:  runParseResume,
}

var (
	parseResumeInputFile      string
	parseResumeOutputFile     string
	parseResumeConfigFile     string
	parseResumeAPIKey         string
	parseResumeModel          string
	parseResumeDatabaseURL    string
	parseResumeSkipEmbeddings bool
	parseResumeVerbose        bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInputFile, "in", "i", "", "Path to resume text file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutputFile, "out", "o", "", "Path to output profile JSON (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeConfigFile, "config", "", "Path to JSON config file")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseResumeCmd.Flags().StringVar(&parseResumeModel, "model", "", "Embedding model name")
	parseResumeCmd.Flags().StringVar(&parseResumeDatabaseURL, "db-url", "", "Database URL for profile persistence (optional)")
	parseResumeCmd.Flags().BoolVar(&parseResumeSkipEmbeddings, "skip-embeddings", false, "Parse structure only, without embeddings")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print detailed parse output")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(parseResumeConfigFile)
	if err != nil {
		return err
	}

	apiKey := parseResumeAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if !parseResumeSkipEmbeddings {
		apiKey, err = resolveAPIKey(apiKey)
		if err != nil {
			return err
		}
	}

	databaseURL := parseResumeDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	model := parseResumeModel
	if model == "" {
		model = cfg.EmbeddingModel
	}

	resumeText, err := os.ReadFile(parseResumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := pipeline.RunPipeline(context.Background(), pipeline.RunOptions{
		ResumeText:     string(resumeText),
		APIKey:         apiKey,
		Model:          model,
		DatabaseURL:    databaseURL,
		SkipEmbeddings: parseResumeSkipEmbeddings,
		Verbose:        parseResumeVerbose,
	})
	if err != nil {
		return err
	}

	if err := writeJSON(parseResumeOutputFile, result.Resume); err != nil {
		return err
	}

	if parseResumeOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseResumeOutputFile)
	}

	return nil
}
