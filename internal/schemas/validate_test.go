package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_ParsedResumeSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath(ParsedResumeSchema)
	require.NotEmpty(t, schemaPath, "parsed_resume schema should be resolvable from the package directory")

	resume := types.ParsedResume{
		Headline: types.Headline{Name: "John Doe", Title: "Software Engineer"},
		WorkExperience: []types.RoleRecord{
			{
				RoleTitle: "Senior Engineer",
				Company:   "Acme Corp",
				Accomplishments: []types.AccomplishmentRecord{
					{Text: "Led team of 5 engineers", HasQuantifier: true, IsPersonalContribution: true},
				},
				RawText: "Senior Engineer | Acme Corp",
			},
		},
		Skills: types.Skills{
			ByCategory:    map[string][]string{"languages": {"Python"}},
			All:           []string{"Python"},
			LinkedToRoles: map[string][]types.RoleRef{},
		},
		Education:    types.Education{StandoutReason: []string{}},
		Achievements: []types.AchievementRecord{},
		Embeddings: types.EmbeddingSet{
			WorkExperience: []types.RoleEmbeddingBlock{},
		},
		ParsedAt: time.Now().UTC(),
	}

	document, err := json.Marshal(resume)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSON(schemaPath, document))
}

func TestValidateJSON_ParsedResumeSchema_RejectsBadAchievementType(t *testing.T) {
	schemaPath := ResolveSchemaPath(ParsedResumeSchema)
	require.NotEmpty(t, schemaPath)

	document := []byte(`{
		"headline": {"name": "", "title": "", "contact": ""},
		"work_experience": [],
		"skills": {"by_category": {}, "all": [], "linked_to_roles": {}},
		"education": {"degree": "", "institution": "", "graduation_date": "", "gpa": "", "is_standout": false, "standout_reasons": []},
		"achievements": [{"text": "Won a prize", "type": "not_a_real_type"}],
		"embeddings": {"work_experience": [], "achievements": {"embeddings": null, "texts": null}}
	}`)

	err := ValidateJSON(schemaPath, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "headline", Message: "is required"},
			{Field: "achievements.0.type", Message: "must be one of the enum values"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "headline")
	assert.Contains(t, errorMsg, "achievements.0.type")
}
