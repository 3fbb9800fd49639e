package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/embedding"
	"github.com/jonathan/interview-coach/internal/matching"
	"github.com/jonathan/interview-coach/internal/observability"
)

var findSimilarCmd = &cobra.Command{
	Use:   "find-similar",
	Short: "Find accomplishments semantically similar to a query",
	Long:  "Rank a profile's embedded accomplishments against a free-text query and print the most similar experiences across all roles.",
	RunE:  runFindSimilar,
}

var (
	findSimilarProfileFile string
	findSimilarProfileID   string
	findSimilarDatabaseURL string
	findSimilarConfigFile  string
	findSimilarAPIKey      string
	findSimilarModel       string
	findSimilarQuery       string
	findSimilarTopK        int
	findSimilarThreshold   float64
	findSimilarJSON        bool
)

func init() {
	findSimilarCmd.Flags().StringVar(&findSimilarProfileFile, "profile", "", "Path to parsed profile JSON file")
	findSimilarCmd.Flags().StringVar(&findSimilarProfileID, "profile-id", "", "Stored profile ID to load from database")
	findSimilarCmd.Flags().StringVar(&findSimilarDatabaseURL, "db-url", "", "Database URL (required with --profile-id)")
	findSimilarCmd.Flags().StringVar(&findSimilarConfigFile, "config", "", "Path to JSON config file")
	findSimilarCmd.Flags().StringVar(&findSimilarAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	findSimilarCmd.Flags().StringVar(&findSimilarModel, "model", "", "Embedding model name")
	findSimilarCmd.Flags().StringVarP(&findSimilarQuery, "query", "q", "", "Query text (required)")
	findSimilarCmd.Flags().IntVar(&findSimilarTopK, "top-k", 0, "Maximum number of matches to return")
	findSimilarCmd.Flags().Float64Var(&findSimilarThreshold, "threshold", 0, "Minimum cosine similarity (0-1)")
	findSimilarCmd.Flags().BoolVar(&findSimilarJSON, "json", false, "Print results as JSON")
	_ = findSimilarCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(findSimilarCmd)
}

func runFindSimilar(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(findSimilarConfigFile)
	if err != nil {
		return err
	}

	apiKey := findSimilarAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	apiKey, err = resolveAPIKey(apiKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	resume, err := loadProfile(ctx, findSimilarProfileFile, findSimilarProfileID, findSimilarDatabaseURL)
	if err != nil {
		return err
	}

	model := findSimilarModel
	if model == "" {
		model = cfg.EmbeddingModel
	}
	embedder, err := embedding.Init(ctx, apiKey, model)
	if err != nil {
		return err
	}

	opts := matching.SearchOptions{TopK: findSimilarTopK, Threshold: findSimilarThreshold}
	if opts.TopK == 0 {
		opts.TopK = cfg.TopK
	}
	if opts.Threshold == 0 {
		opts.Threshold = cfg.SimilarityThreshold
	}

	results, err := matching.FindSimilar(ctx, embedder, findSimilarQuery, resume.Embeddings.WorkExperience, opts)
	if err != nil {
		return err
	}

	if findSimilarJSON {
		return writeJSON("", results)
	}

	observability.NewPrinter(os.Stdout).PrintMatchResults("SIMILAR EXPERIENCES", results)
	return nil
}
