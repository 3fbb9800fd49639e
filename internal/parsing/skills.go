package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// skillCategory binds a category name to the line prefixes that introduce it.
type skillCategory struct {
	name     string
	prefixes []string
}

// skillCategories are scanned in order against each line of the skills
// section. The remainder of a matching line is split on commas/semicolons.
var skillCategories = []skillCategory{
	{"languages", []string{"Languages:", "Programming Languages:"}},
	{"frameworks", []string{"Frameworks:", "Frameworks/Tools:"}},
	{"tools", []string{"Tools:", "Technologies:"}},
	{"concepts", []string{"Concepts:", "Knowledge:"}},
}

var skillSeparator = regexp.MustCompile(`[,;]`)

// ExtractSkills parses categorized skill lists from the skills section and
// cross-references each skill against role text to build the skill-to-roles
// index. A missing skills section yields empty categories; a skill with no
// matching role is simply absent from LinkedToRoles.
func ExtractSkills(lines []string, sections map[string]int, roles []types.RoleRecord) types.Skills {
	skills := types.Skills{
		ByCategory:    make(map[string][]string),
		LinkedToRoles: make(map[string][]types.RoleRef),
	}
	for _, category := range skillCategories {
		skills.ByCategory[category.name] = []string{}
	}

	for _, line := range sectionLines(lines, sections, SectionSkills) {
		trimmed := strings.TrimSpace(line)
		for _, category := range skillCategories {
			rest, ok := matchCategoryPrefix(trimmed, category.prefixes)
			if !ok {
				continue
			}
			for _, token := range skillSeparator.Split(rest, -1) {
				if skill := strings.TrimSpace(token); skill != "" {
					skills.ByCategory[category.name] = append(skills.ByCategory[category.name], skill)
				}
			}
			break
		}
	}

	seen := make(map[string]bool)
	skills.All = []string{}
	for _, category := range skillCategories {
		for _, skill := range skills.ByCategory[category.name] {
			if !seen[skill] {
				seen[skill] = true
				skills.All = append(skills.All, skill)
			}
			if linked := linkSkillToRoles(skill, roles); len(linked) > 0 {
				skills.LinkedToRoles[skill] = linked
			}
		}
	}

	return skills
}

// matchCategoryPrefix reports whether the line starts with one of the
// category prefixes (case-insensitive) and returns the remainder.
func matchCategoryPrefix(line string, prefixes []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return line[len(prefix):], true
		}
	}
	return "", false
}

// linkSkillToRoles finds the roles whose title or raw text mention the
// skill, either directly or through a tech-stack vocabulary entry the skill
// is part of.
func linkSkillToRoles(skill string, roles []types.RoleRecord) []types.RoleRef {
	skillLower := strings.ToLower(skill)
	var refs []types.RoleRef

	for _, role := range roles {
		roleText := strings.ToLower(role.RoleTitle + " " + role.RawText)
		if strings.Contains(roleText, skillLower) || vocabularyMentions(skillLower, roleText) {
			refs = append(refs, types.RoleRef{RoleTitle: role.RoleTitle, Company: role.Company})
		}
	}

	return refs
}

// vocabularyMentions reports whether any tech vocabulary entry containing
// the skill appears in the role text.
func vocabularyMentions(skillLower, roleText string) bool {
	for _, tech := range techStackVocabulary {
		if strings.Contains(tech, skillLower) && strings.Contains(roleText, tech) {
			return true
		}
	}
	return false
}
