package embedding

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

// fakeEmbedder returns a deterministic vector per text so tests can assert
// index alignment without network access.
type fakeEmbedder struct {
	calls     int
	failWhen  func(texts []string) bool
	lastTexts []string
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	f.lastTexts = texts
	if f.failWhen != nil && f.failWhen(texts) {
		return nil, &APICallError{Message: "failed to embed batch", Cause: fmt.Errorf("boom")}
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)), float32(i)}
	}
	return vectors, nil
}

func (f *fakeEmbedder) Close() error { return nil }

func twoRoleResume() *types.ParsedResume {
	return &types.ParsedResume{
		WorkExperience: []types.RoleRecord{
			{
				RoleTitle: "Senior Engineer",
				Company:   "Acme Corp",
				Accomplishments: []types.AccomplishmentRecord{
					{Text: "Led team of 5 engineers"},
					{Text: "Improved latency by 40%"},
				},
			},
			{
				RoleTitle: "Engineer",
				Company:   "Beta Inc",
				Accomplishments: []types.AccomplishmentRecord{
					{Text: "Built dashboards"},
				},
			},
		},
		Achievements: []types.AchievementRecord{
			{Text: "Employee of the Year Award", Type: types.AchievementTypeAward},
		},
	}
}

func TestBuildEmbeddings_OneBlockPerRole(t *testing.T) {
	fake := &fakeEmbedder{}
	generator := NewGenerator(fake)

	set := generator.BuildEmbeddings(context.Background(), twoRoleResume())

	require.Len(t, set.WorkExperience, 2)

	first := set.WorkExperience[0]
	assert.Equal(t, "Senior Engineer", first.RoleTitle)
	assert.Equal(t, "Acme Corp", first.Company)
	require.Len(t, first.Embeddings, 2)
	require.Len(t, first.Texts, 2)

	second := set.WorkExperience[1]
	assert.Equal(t, "Engineer", second.RoleTitle)
	require.Len(t, second.Embeddings, 1)
}

func TestBuildEmbeddings_TextsCarryRoleContext(t *testing.T) {
	fake := &fakeEmbedder{}
	generator := NewGenerator(fake)

	set := generator.BuildEmbeddings(context.Background(), twoRoleResume())

	require.NotEmpty(t, set.WorkExperience)
	assert.Equal(t, "Senior Engineer at Acme Corp: Led team of 5 engineers", set.WorkExperience[0].Texts[0])
	assert.Equal(t, "Senior Engineer at Acme Corp: Improved latency by 40%", set.WorkExperience[0].Texts[1])
}

func TestBuildEmbeddings_AchievementsBatch(t *testing.T) {
	fake := &fakeEmbedder{}
	generator := NewGenerator(fake)

	set := generator.BuildEmbeddings(context.Background(), twoRoleResume())

	require.False(t, set.Achievements.IsEmpty())
	assert.Equal(t, []string{"Employee of the Year Award"}, set.Achievements.Texts)
	require.Len(t, set.Achievements.Embeddings, 1)
}

func TestBuildEmbeddings_FailedRoleSkippedWithWarning(t *testing.T) {
	fake := &fakeEmbedder{
		failWhen: func(texts []string) bool {
			return strings.Contains(texts[0], "Acme Corp")
		},
	}
	generator := NewGenerator(fake)

	var warnings []string
	generator.SetWarnFunc(func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})

	set := generator.BuildEmbeddings(context.Background(), twoRoleResume())

	require.Len(t, set.WorkExperience, 1, "the failing role is skipped, the other still embeds")
	assert.Equal(t, "Engineer", set.WorkExperience[0].RoleTitle)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Senior Engineer")
}

func TestBuildEmbeddings_RoleWithoutAccomplishmentsProducesNoBlock(t *testing.T) {
	fake := &fakeEmbedder{}
	generator := NewGenerator(fake)

	resume := &types.ParsedResume{
		WorkExperience: []types.RoleRecord{{RoleTitle: "Engineer", Company: "Acme Corp"}},
	}

	set := generator.BuildEmbeddings(context.Background(), resume)

	assert.Empty(t, set.WorkExperience)
	assert.Zero(t, fake.calls, "no batch call should be made for an empty role")
}

func TestBuildEmbeddings_EmptyResume(t *testing.T) {
	fake := &fakeEmbedder{}
	generator := NewGenerator(fake)

	set := generator.BuildEmbeddings(context.Background(), &types.ParsedResume{})

	assert.NotNil(t, set.WorkExperience)
	assert.Empty(t, set.WorkExperience)
	assert.True(t, set.Achievements.IsEmpty())
	assert.Zero(t, fake.calls)
}

func TestNewGeminiEmbedder_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiEmbedder(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestAPICallError_Error(t *testing.T) {
	err := &APICallError{Message: "failed to embed batch", Cause: fmt.Errorf("quota exceeded")}
	assert.Contains(t, err.Error(), "failed to embed batch")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, "quota exceeded", err.Unwrap().Error())

	bare := &APICallError{Message: "no response"}
	assert.Equal(t, "API call failed: no response", bare.Error())
}
