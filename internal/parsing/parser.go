package parsing

import (
	"strings"
	"time"

	"github.com/jonathan/interview-coach/internal/types"
)

// Parse extracts all structural data from raw resume text: headline, work
// experience, skills, education, and achievements. It always returns a
// fully populated (possibly mostly empty) record and never fails, even on
// text with no recognizable structure. Embeddings are generated separately
// by the embedding package.
func Parse(resumeText string) *types.ParsedResume {
	lines := strings.Split(resumeText, "\n")
	sections := IdentifySections(lines)

	roles := extractWorkExperience(lines, sections)

	return &types.ParsedResume{
		Headline:       ExtractHeadline(lines, sections),
		WorkExperience: roles,
		Skills:         ExtractSkills(lines, sections, roles),
		Education:      ExtractEducation(lines, sections),
		Achievements:   ExtractAchievements(lines, sections, roles),
		Embeddings:     types.EmbeddingSet{WorkExperience: []types.RoleEmbeddingBlock{}},
		ParsedAt:       time.Now().UTC(),
	}
}

// extractWorkExperience slices out the experience section, splits it into
// role blocks, parses each block, and orders the results most-recent-first.
// Malformed blocks are dropped; the rest still parse.
func extractWorkExperience(lines []string, sections map[string]int) []types.RoleRecord {
	roles := []types.RoleRecord{}

	expLines := sectionLines(lines, sections, SectionExperience)
	if expLines == nil {
		return roles
	}

	for _, block := range SplitIntoRoles(expLines) {
		if record := ParseRoleBlock(block); record != nil {
			roles = append(roles, *record)
		}
	}

	sortRolesByRecency(roles)
	return roles
}
