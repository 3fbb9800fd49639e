// Package pipeline provides the high-level orchestration for turning raw
// resume text into a validated, embedding-enriched candidate profile.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/embedding"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/parsing"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

// Pipeline step names emitted as progress events.
const (
	StepStructure    = "structure"
	StepEmbeddings   = "embeddings"
	StepValidation   = "validation"
	StepPersistence  = "persistence"
	CategoryParsing  = "parsing"
	CategorySemantic = "semantic"
	CategoryStorage  = "storage"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumeText  string
	APIKey      string
	Model       string
	DatabaseURL string

	// Embedder overrides the shared Gemini embedder. Used for direct
	// injection; leave nil in production.
	Embedder embedding.Embedder

	// SkipEmbeddings parses structure only; semantic features stay empty.
	SkipEmbeddings bool

	Verbose    bool
	OnProgress ProgressCallback
}

// RunResult holds the pipeline outputs.
type RunResult struct {
	Resume *types.ParsedResume
	// ProfileID is set when the profile was persisted to the database.
	ProfileID uuid.UUID
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// countAccomplishments returns the total accomplishment count across roles
func countAccomplishments(roles []types.RoleRecord) int {
	count := 0
	for _, role := range roles {
		count += len(role.Accomplishments)
	}
	return count
}

// RunPipeline parses resume text, generates accomplishment embeddings, and
// validates the combined result. Parsing itself cannot fail; the pipeline
// errors only on embedder construction, schema validation, or an explicit
// persistence failure.
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Step 1: Structural parse
	fmt.Printf("Step 1/4: Parsing resume structure...\n")
	resume := parsing.Parse(opts.ResumeText)
	if opts.Verbose {
		printer.PrintParsedResume(resume)
	}
	emitProgress(&opts, StepStructure, CategoryParsing,
		fmt.Sprintf("Parsed %d roles with %d accomplishments",
			len(resume.WorkExperience), countAccomplishments(resume.WorkExperience)), resume)

	// Step 2: Embedding generation, work experience and achievements in parallel
	if opts.SkipEmbeddings {
		fmt.Printf("Step 2/4: Skipping embedding generation.\n")
	} else {
		fmt.Printf("Step 2/4: Generating accomplishment embeddings...\n")

		embedder := opts.Embedder
		if embedder == nil {
			var err error
			embedder, err = embedding.Init(ctx, opts.APIKey, opts.Model)
			if err != nil {
				return nil, fmt.Errorf("initializing embedder failed: %w", err)
			}
		}
		generator := embedding.NewGenerator(embedder)

		g, gCtx := errgroup.WithContext(ctx)
		var mu sync.Mutex // Protect result assignments

		g.Go(func() error {
			blocks := generator.BuildRoleEmbeddings(gCtx, resume.WorkExperience)
			mu.Lock()
			resume.Embeddings.WorkExperience = blocks
			mu.Unlock()
			return nil
		})
		g.Go(func() error {
			block := generator.BuildAchievementEmbeddings(gCtx, resume.Achievements)
			mu.Lock()
			resume.Embeddings.Achievements = block
			mu.Unlock()
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		emitProgress(&opts, StepEmbeddings, CategorySemantic,
			fmt.Sprintf("Embedded %d roles", len(resume.Embeddings.WorkExperience)), nil)
	}

	// Step 3: Schema validation
	fmt.Printf("Step 3/4: Validating parsed profile...\n")
	schemaPath := schemas.ResolveSchemaPath(schemas.ParsedResumeSchema)
	if schemaPath == "" {
		fmt.Printf("Warning: schema file not found, skipping validation\n")
	} else {
		document, err := json.Marshal(resume)
		if err != nil {
			return nil, fmt.Errorf("marshaling parsed profile failed: %w", err)
		}
		if err := schemas.ValidateJSON(schemaPath, document); err != nil {
			return nil, fmt.Errorf("parsed profile failed validation: %w", err)
		}
		emitProgress(&opts, StepValidation, CategoryParsing, "Profile passed schema validation", nil)
	}

	result := &RunResult{Resume: resume}

	// Step 4: Optional persistence
	if opts.DatabaseURL == "" {
		fmt.Printf("Step 4/4: No database configured, skipping persistence.\n")
		return result, nil
	}

	fmt.Printf("Step 4/4: Saving profile to database...\n")
	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: Failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without database persistence...\n")
		return result, nil
	}
	defer database.Close()

	id, err := database.SaveProfile(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("saving profile failed: %w", err)
	}
	result.ProfileID = id
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Saved profile: %s\n", id)
	}
	emitProgress(&opts, StepPersistence, CategoryStorage,
		fmt.Sprintf("Saved profile %s", id), nil)

	return result, nil
}
