package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/embedding"
	"github.com/jonathan/interview-coach/internal/matching"
	"github.com/jonathan/interview-coach/internal/observability"
)

var matchSkillCmd = &cobra.Command{
	Use:   "match-skill",
	Short: "Find experiences demonstrating a specific skill",
	Long:  "Match a profile's embedded accomplishments against a skill name using the templated query \"used {skill} to\". Skill names are normalized, so variants like \"golang\" and \"Go\" behave identically.",
	RunE:  runMatchSkill,
}

var (
	matchSkillProfileFile string
	matchSkillProfileID   string
	matchSkillDatabaseURL string
	matchSkillConfigFile  string
	matchSkillAPIKey      string
	matchSkillModel       string
	matchSkillName        string
	matchSkillThreshold   float64
	matchSkillJSON        bool
)

func init() {
	matchSkillCmd.Flags().StringVar(&matchSkillProfileFile, "profile", "", "Path to parsed profile JSON file")
	matchSkillCmd.Flags().StringVar(&matchSkillProfileID, "profile-id", "", "Stored profile ID to load from database")
	matchSkillCmd.Flags().StringVar(&matchSkillDatabaseURL, "db-url", "", "Database URL (required with --profile-id)")
	matchSkillCmd.Flags().StringVar(&matchSkillConfigFile, "config", "", "Path to JSON config file")
	matchSkillCmd.Flags().StringVar(&matchSkillAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchSkillCmd.Flags().StringVar(&matchSkillModel, "model", "", "Embedding model name")
	matchSkillCmd.Flags().StringVarP(&matchSkillName, "skill", "s", "", "Skill name to match (required)")
	matchSkillCmd.Flags().Float64Var(&matchSkillThreshold, "threshold", 0, "Minimum cosine similarity (0-1)")
	matchSkillCmd.Flags().BoolVar(&matchSkillJSON, "json", false, "Print results as JSON")
	_ = matchSkillCmd.MarkFlagRequired("skill")

	rootCmd.AddCommand(matchSkillCmd)
}

func runMatchSkill(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(matchSkillConfigFile)
	if err != nil {
		return err
	}

	apiKey := matchSkillAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	apiKey, err = resolveAPIKey(apiKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	resume, err := loadProfile(ctx, matchSkillProfileFile, matchSkillProfileID, matchSkillDatabaseURL)
	if err != nil {
		return err
	}

	model := matchSkillModel
	if model == "" {
		model = cfg.EmbeddingModel
	}
	embedder, err := embedding.Init(ctx, apiKey, model)
	if err != nil {
		return err
	}

	threshold := matchSkillThreshold
	if threshold == 0 {
		threshold = cfg.SkillMatchThreshold
	}

	results, err := matching.MatchSkill(ctx, embedder, matchSkillName, resume.Embeddings.WorkExperience, threshold)
	if err != nil {
		return err
	}

	if matchSkillJSON {
		return writeJSON("", results)
	}

	observability.NewPrinter(os.Stdout).PrintMatchResults("SKILL MATCHES", results)
	return nil
}
