package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
)

// resolveAPIKey returns the API key from the flag, falling back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(flagValue string) (string, error) {
	apiKey := flagValue
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}

// loadMergedConfig loads the optional config file and merges it with the
// built-in defaults. An empty path yields pure defaults.
func loadMergedConfig(path string) (config.Config, error) {
	if path == "" {
		base := config.Config{}
		return base.MergeWithDefaults(config.Config{}), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(config.Config{}), nil
}

// loadProfileFromFile reads a parsed profile JSON file.
func loadProfileFromFile(path string) (*types.ParsedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var resume types.ParsedResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &resume, nil
}

// loadProfile resolves a profile from either a JSON file or the database.
// Exactly one source must be provided.
func loadProfile(ctx context.Context, filePath, profileID, databaseURL string) (*types.ParsedResume, error) {
	useFile := filePath != ""
	useDatabase := profileID != ""

	if useFile && useDatabase {
		return nil, fmt.Errorf("cannot use --profile with --profile-id")
	}
	if !useFile && !useDatabase {
		return nil, fmt.Errorf("must provide either --profile or --profile-id")
	}

	if useFile {
		return loadProfileFromFile(filePath)
	}

	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile-id: %w", err)
	}

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL required when using --profile-id")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	resume, err := database.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if resume == nil {
		return nil, fmt.Errorf("profile not found: %s", id)
	}
	return resume, nil
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
