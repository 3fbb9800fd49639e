package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifySections_AllPresent(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"",
		"WORK EXPERIENCE",
		"some role",
		"EDUCATION",
		"some degree",
		"TECHNICAL SKILLS",
		"Languages: Python",
		"ACHIEVEMENTS",
		"an award",
	}

	sections := IdentifySections(lines)

	assert.Equal(t, 2, sections[SectionExperience])
	assert.Equal(t, 4, sections[SectionEducation])
	assert.Equal(t, 6, sections[SectionSkills])
	assert.Equal(t, 8, sections[SectionAchievements])
}

func TestIdentifySections_CaseInsensitiveContainment(t *testing.T) {
	lines := []string{
		"Professional Experience",
		"Academic Background",
	}

	sections := IdentifySections(lines)

	assert.Equal(t, 0, sections[SectionExperience])
	assert.Equal(t, 1, sections[SectionEducation])
}

func TestIdentifySections_FirstMatchWins(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"more text",
		"EMPLOYMENT", // second experience header is ignored
	}

	sections := IdentifySections(lines)

	assert.Equal(t, 0, sections[SectionExperience])
}

func TestIdentifySections_MissingSections(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"EXPERIENCE",
		"some role",
	}

	sections := IdentifySections(lines)

	assert.Contains(t, sections, SectionExperience)
	assert.NotContains(t, sections, SectionEducation)
	assert.NotContains(t, sections, SectionSkills)
}

func TestIdentifySections_NoStructure(t *testing.T) {
	sections := IdentifySections([]string{"just some text", "with no headers"})
	assert.Empty(t, sections)
}

func TestSectionLines_BoundedByNextSection(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"role one",
		"role two",
		"EDUCATION",
		"degree",
	}
	sections := IdentifySections(lines)

	exp := sectionLines(lines, sections, SectionExperience)
	assert.Equal(t, []string{"EXPERIENCE", "role one", "role two"}, exp)

	edu := sectionLines(lines, sections, SectionEducation)
	assert.Equal(t, []string{"EDUCATION", "degree"}, edu)
}

func TestSectionLines_MissingSectionReturnsNil(t *testing.T) {
	lines := []string{"EXPERIENCE", "role"}
	sections := IdentifySections(lines)

	assert.Nil(t, sectionLines(lines, sections, SectionSkills))
}

func TestSectionEnd_LastSectionRunsToEnd(t *testing.T) {
	lines := []string{"EXPERIENCE", "role", "EDUCATION", "degree", "more degree"}
	sections := IdentifySections(lines)

	assert.Equal(t, len(lines), sectionEnd(sections, SectionEducation, len(lines)))
}
