package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/embedding"
	"github.com/jonathan/interview-coach/internal/parsing"
	"github.com/jonathan/interview-coach/internal/types"
)

// Default search parameters. Empirically chosen; overridable per call and
// through configuration.
const (
	DefaultTopK = 3
	// DefaultThreshold is used for general similarity search.
	DefaultThreshold = 0.5
	// SkillMatchThreshold is tighter recall for precise skill matching.
	SkillMatchThreshold = 0.4
	// StoryCandidateThreshold is intentionally loose for creative story matching.
	StoryCandidateThreshold = 0.3
	// skillMatchTopK widens skill matches beyond the general default.
	skillMatchTopK = 5
)

// SearchOptions control similarity search behavior.
type SearchOptions struct {
	TopK      int     `validate:"gte=1"`
	Threshold float64 `validate:"gte=0,lte=1"`
}

// DefaultSearchOptions returns the standard search parameters.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{TopK: DefaultTopK, Threshold: DefaultThreshold}
}

// Validate validates the search options using the validator.
func (o *SearchOptions) Validate() error {
	return validator.New().Struct(o)
}

// FindSimilar ranks stored accomplishment embeddings against a free-text
// query. Similarities are computed independently per role, the role-local
// top-k candidates are merged across roles, filtered by the threshold,
// sorted by similarity, and truncated to the requested top-k. An empty
// embedding set yields an empty result without calling the embedder.
func FindSimilar(ctx context.Context, embedder embedding.Embedder, query string, blocks []types.RoleEmbeddingBlock, opts SearchOptions) ([]types.MatchResult, error) {
	if len(blocks) == 0 {
		return []types.MatchResult{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}

	vectors, err := embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	queryVector := vectors[0]

	results := []types.MatchResult{}
	for _, block := range blocks {
		results = append(results, scoreRole(queryVector, block, opts)...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > opts.TopK {
		results = results[:opts.TopK]
	}

	return results, nil
}

// scoreRole returns the role-local top-k accomplishments at or above the
// threshold, as match results.
func scoreRole(queryVector []float32, block types.RoleEmbeddingBlock, opts SearchOptions) []types.MatchResult {
	type scored struct {
		index      int
		similarity float64
	}

	candidates := make([]scored, 0, len(block.Embeddings))
	for i, vector := range block.Embeddings {
		candidates = append(candidates, scored{i, cosineSimilarity(queryVector, vector)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	if len(candidates) > opts.TopK {
		candidates = candidates[:opts.TopK]
	}

	var results []types.MatchResult
	for _, c := range candidates {
		if c.similarity < opts.Threshold {
			continue
		}
		results = append(results, types.MatchResult{
			RoleTitle:      block.RoleTitle,
			Company:        block.Company,
			Accomplishment: block.Texts[c.index],
			Similarity:     c.similarity,
			MatchType:      types.MatchTypeWorkExperience,
		})
	}
	return results
}

// MatchSkill finds experiences semantically related to a skill using the
// templated query "used {skill} to". The skill name is normalized first so
// variants like "golang" and "Go" query identically.
func MatchSkill(ctx context.Context, embedder embedding.Embedder, skill string, blocks []types.RoleEmbeddingBlock, threshold float64) ([]types.MatchResult, error) {
	query := fmt.Sprintf("used %s to", parsing.NormalizeSkillName(skill))
	return FindSimilar(ctx, embedder, query, blocks, SearchOptions{
		TopK:      skillMatchTopK,
		Threshold: threshold,
	})
}

// FindStoryCandidates finds the best story candidates for a behavioral
// question theme. The query is enriched with impact context. The threshold
// should stay loose (StoryCandidateThreshold by default) since story
// matching favors recall.
func FindStoryCandidates(ctx context.Context, embedder embedding.Embedder, theme string, blocks []types.RoleEmbeddingBlock, topK int, threshold float64) ([]types.MatchResult, error) {
	query := fmt.Sprintf("experience about %s with measurable impact", theme)
	return FindSimilar(ctx, embedder, query, blocks, SearchOptions{
		TopK:      topK,
		Threshold: threshold,
	})
}
