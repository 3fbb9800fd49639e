package embedding

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/types"
)

// WarnFunc receives non-fatal embedding warnings (a skipped role's batch).
type WarnFunc func(format string, args ...any)

// Generator builds the embedding set for a parsed resume.
type Generator struct {
	embedder Embedder
	warnf    WarnFunc
}

// NewGenerator creates a Generator over the given embedder. Warnings go to
// stderr unless redirected with SetWarnFunc.
func NewGenerator(embedder Embedder) *Generator {
	return &Generator{
		embedder: embedder,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// SetWarnFunc redirects non-fatal warnings, e.g. into a test recorder.
func (g *Generator) SetWarnFunc(warnf WarnFunc) {
	g.warnf = warnf
}

// BuildEmbeddings encodes every role's accomplishments and the achievement
// list into dense vectors. Each accomplishment is embedded with its role
// context: "{role_title} at {company}: {text}". A role whose batch fails to
// encode is skipped with a warning; partial coverage never aborts the parse.
func (g *Generator) BuildEmbeddings(ctx context.Context, resume *types.ParsedResume) types.EmbeddingSet {
	return types.EmbeddingSet{
		WorkExperience: g.BuildRoleEmbeddings(ctx, resume.WorkExperience),
		Achievements:   g.BuildAchievementEmbeddings(ctx, resume.Achievements),
	}
}

// BuildRoleEmbeddings encodes each role's accomplishments, one batch per
// role. Failed roles are skipped with a warning.
func (g *Generator) BuildRoleEmbeddings(ctx context.Context, roles []types.RoleRecord) []types.RoleEmbeddingBlock {
	blocks := []types.RoleEmbeddingBlock{}
	for _, role := range roles {
		block, err := g.embedRole(ctx, role)
		if err != nil {
			g.warnf("failed to generate embeddings for role %q: %v", role.RoleTitle, err)
			continue
		}
		if block != nil {
			blocks = append(blocks, *block)
		}
	}
	return blocks
}

// BuildAchievementEmbeddings encodes the achievement texts as one batch. A
// failed batch yields an empty block with a warning.
func (g *Generator) BuildAchievementEmbeddings(ctx context.Context, achievements []types.AchievementRecord) types.EmbeddingBlock {
	block, err := g.embedAchievements(ctx, achievements)
	if err != nil {
		g.warnf("failed to generate embeddings for achievements: %v", err)
		return types.EmbeddingBlock{}
	}
	if block == nil {
		return types.EmbeddingBlock{}
	}
	return *block
}

// embedRole encodes one role's accomplishments as a single batch. Roles
// without accomplishments produce no block.
func (g *Generator) embedRole(ctx context.Context, role types.RoleRecord) (*types.RoleEmbeddingBlock, error) {
	if len(role.Accomplishments) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(role.Accomplishments))
	for _, acc := range role.Accomplishments {
		texts = append(texts, fmt.Sprintf("%s at %s: %s", role.RoleTitle, role.Company, acc.Text))
	}

	vectors, err := g.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}

	return &types.RoleEmbeddingBlock{
		RoleTitle:  role.RoleTitle,
		Company:    role.Company,
		Embeddings: vectors,
		Texts:      texts,
	}, nil
}

// embedAchievements encodes the achievement texts as one batch.
func (g *Generator) embedAchievements(ctx context.Context, achievements []types.AchievementRecord) (*types.EmbeddingBlock, error) {
	if len(achievements) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(achievements))
	for _, ach := range achievements {
		texts = append(texts, ach.Text)
	}

	vectors, err := g.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}

	return &types.EmbeddingBlock{Embeddings: vectors, Texts: texts}, nil
}
