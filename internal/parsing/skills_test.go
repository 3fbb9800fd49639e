package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func skillsFixtureLines() []string {
	return []string{
		"SKILLS",
		"Languages: Python, JavaScript",
		"Frameworks: React; Flask",
		"Tools: Docker, Git",
		"Concepts: Microservices, CI/CD",
	}
}

func TestExtractSkills_Categories(t *testing.T) {
	lines := skillsFixtureLines()
	sections := IdentifySections(lines)

	skills := ExtractSkills(lines, sections, nil)

	assert.Equal(t, []string{"Python", "JavaScript"}, skills.ByCategory["languages"])
	assert.Equal(t, []string{"React", "Flask"}, skills.ByCategory["frameworks"])
	assert.Equal(t, []string{"Docker", "Git"}, skills.ByCategory["tools"])
	assert.Equal(t, []string{"Microservices", "CI/CD"}, skills.ByCategory["concepts"])
}

func TestExtractSkills_AllIsDeduplicatedFlatList(t *testing.T) {
	lines := []string{
		"SKILLS",
		"Languages: Python",
		"Tools: Python, Docker",
	}
	sections := IdentifySections(lines)

	skills := ExtractSkills(lines, sections, nil)

	assert.Equal(t, []string{"Python", "Docker"}, skills.All)
}

func TestExtractSkills_LinksSkillsToRoles(t *testing.T) {
	lines := skillsFixtureLines()
	sections := IdentifySections(lines)
	roles := []types.RoleRecord{
		{
			RoleTitle: "Senior Engineer",
			Company:   "Acme Corp",
			RawText:   "Senior Engineer | Acme Corp\n• Built the payments platform in Python",
		},
		{
			RoleTitle: "Engineer",
			Company:   "Beta Inc",
			RawText:   "Engineer | Beta Inc\n• Developed React dashboards",
		},
	}

	skills := ExtractSkills(lines, sections, roles)

	require.Contains(t, skills.LinkedToRoles, "Python")
	assert.Equal(t, []types.RoleRef{{RoleTitle: "Senior Engineer", Company: "Acme Corp"}}, skills.LinkedToRoles["Python"])

	require.Contains(t, skills.LinkedToRoles, "React")
	assert.Equal(t, []types.RoleRef{{RoleTitle: "Engineer", Company: "Beta Inc"}}, skills.LinkedToRoles["React"])

	// Skills that no role mentions are absent from the index entirely.
	assert.NotContains(t, skills.LinkedToRoles, "Flask")
	assert.NotContains(t, skills.LinkedToRoles, "Docker")
}

func TestExtractSkills_MissingSection(t *testing.T) {
	lines := []string{"EXPERIENCE", "Engineer | Acme Corp"}
	sections := IdentifySections(lines)

	skills := ExtractSkills(lines, sections, nil)

	assert.Empty(t, skills.All)
	assert.Empty(t, skills.LinkedToRoles)
	for _, category := range []string{"languages", "frameworks", "tools", "concepts"} {
		list, ok := skills.ByCategory[category]
		assert.True(t, ok, "category %s should be present even when empty", category)
		assert.Empty(t, list)
	}
}

func TestExtractSkills_CaseInsensitivePrefix(t *testing.T) {
	lines := []string{
		"SKILLS",
		"LANGUAGES: Python",
	}
	sections := IdentifySections(lines)

	skills := ExtractSkills(lines, sections, nil)

	assert.Equal(t, []string{"Python"}, skills.ByCategory["languages"])
}

func TestMatchCategoryPrefix(t *testing.T) {
	rest, ok := matchCategoryPrefix("Languages: Python, Java", []string{"Languages:"})
	require.True(t, ok)
	assert.Equal(t, " Python, Java", rest)

	_, ok = matchCategoryPrefix("Hobbies: chess", []string{"Languages:"})
	assert.False(t, ok)
}
