// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/matching"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Credentials and endpoints
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the embedding model
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for profile storage

	// Embedding
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Matching parameters. Empirically chosen defaults; see matching package.
	TopK                    int     `json:"top_k,omitempty" validate:"gte=0"`
	SimilarityThreshold     float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	SkillMatchThreshold     float64 `json:"skill_match_threshold,omitempty" validate:"gte=0,lte=1"`
	StoryCandidateThreshold float64 `json:"story_candidate_threshold,omitempty" validate:"gte=0,lte=1"`
	MaxClusters             int     `json:"max_clusters,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, falling back to the matching package defaults for thresholds.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}

	// Numeric fields: zero means unset
	if result.TopK == 0 {
		result.TopK = nonZeroInt(defaults.TopK, matching.DefaultTopK)
	}
	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = nonZeroFloat(defaults.SimilarityThreshold, matching.DefaultThreshold)
	}
	if result.SkillMatchThreshold == 0 {
		result.SkillMatchThreshold = nonZeroFloat(defaults.SkillMatchThreshold, matching.SkillMatchThreshold)
	}
	if result.StoryCandidateThreshold == 0 {
		result.StoryCandidateThreshold = nonZeroFloat(defaults.StoryCandidateThreshold, matching.StoryCandidateThreshold)
	}
	if result.MaxClusters == 0 {
		result.MaxClusters = nonZeroInt(defaults.MaxClusters, matching.MaxClusters)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func nonZeroInt(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

func nonZeroFloat(v, fallback float64) float64 {
	if v != 0 {
		return v
	}
	return fallback
}
