package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/embedding"
	"github.com/jonathan/interview-coach/internal/matching"
	"github.com/jonathan/interview-coach/internal/observability"
)

var storyCandidatesCmd = &cobra.Command{
	Use:   "story-candidates",
	Short: "Find story candidates for a behavioral question theme",
	Long:  "Find the profile experiences best suited as behavioral interview stories for a given theme (e.g. \"conflict resolution\", \"leadership\"). The similarity threshold is deliberately loose to favor recall.",
	RunE:  runStoryCandidates,
}

var (
	storyCandidatesProfileFile string
	storyCandidatesProfileID   string
	storyCandidatesDatabaseURL string
	storyCandidatesConfigFile  string
	storyCandidatesAPIKey      string
	storyCandidatesModel       string
	storyCandidatesTheme       string
	storyCandidatesTopK        int
	storyCandidatesThreshold   float64
	storyCandidatesJSON        bool
)

func init() {
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesProfileFile, "profile", "", "Path to parsed profile JSON file")
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesProfileID, "profile-id", "", "Stored profile ID to load from database")
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesDatabaseURL, "db-url", "", "Database URL (required with --profile-id)")
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesConfigFile, "config", "", "Path to JSON config file")
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	storyCandidatesCmd.Flags().StringVar(&storyCandidatesModel, "model", "", "Embedding model name")
	storyCandidatesCmd.Flags().StringVarP(&storyCandidatesTheme, "theme", "t", "", "Behavioral question theme (required)")
	storyCandidatesCmd.Flags().IntVar(&storyCandidatesTopK, "top-k", 0, "Maximum number of candidates to return")
	storyCandidatesCmd.Flags().Float64Var(&storyCandidatesThreshold, "threshold", 0, "Minimum cosine similarity (0-1)")
	storyCandidatesCmd.Flags().BoolVar(&storyCandidatesJSON, "json", false, "Print results as JSON")
	_ = storyCandidatesCmd.MarkFlagRequired("theme")

	rootCmd.AddCommand(storyCandidatesCmd)
}

func runStoryCandidates(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(storyCandidatesConfigFile)
	if err != nil {
		return err
	}

	apiKey := storyCandidatesAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	apiKey, err = resolveAPIKey(apiKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	resume, err := loadProfile(ctx, storyCandidatesProfileFile, storyCandidatesProfileID, storyCandidatesDatabaseURL)
	if err != nil {
		return err
	}

	model := storyCandidatesModel
	if model == "" {
		model = cfg.EmbeddingModel
	}
	embedder, err := embedding.Init(ctx, apiKey, model)
	if err != nil {
		return err
	}

	topK := storyCandidatesTopK
	if topK == 0 {
		topK = cfg.TopK
	}
	threshold := storyCandidatesThreshold
	if threshold == 0 {
		threshold = cfg.StoryCandidateThreshold
	}

	results, err := matching.FindStoryCandidates(ctx, embedder, storyCandidatesTheme, resume.Embeddings.WorkExperience, topK, threshold)
	if err != nil {
		return err
	}

	if storyCandidatesJSON {
		return writeJSON("", results)
	}

	observability.NewPrinter(os.Stdout).PrintMatchResults("STORY CANDIDATES", results)
	return nil
}
