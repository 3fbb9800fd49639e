// Package parsing implements the rule-based resume extraction pipeline:
// section segmentation, role-block splitting, and structured field
// extraction for behavioral interview preparation. All extraction is
// best-effort; missing structure degrades to empty results, never errors.
package parsing

import "strings"

// Section names recognized by the segmenter.
const (
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
)

// sectionKeywords maps each section to the header keywords that mark it.
// Matching is case-insensitive containment; first matching line wins.
var sectionKeywords = map[string][]string{
	SectionExperience:   {"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE"},
	SectionEducation:    {"EDUCATION", "ACADEMIC BACKGROUND"},
	SectionSkills:       {"SKILLS", "TECHNICAL SKILLS", "TECHNOLOGIES", "COMPETENCIES"},
	SectionProjects:     {"PROJECTS", "PERSONAL PROJECTS", "SIDE PROJECTS"},
	SectionAchievements: {"ACHIEVEMENTS", "AWARDS", "HONORS", "CERTIFICATIONS", "LEADERSHIP"},
}

// IdentifySections scans resume lines for section headers and returns a map
// from section name to the zero-based line index where its header appears.
// Sections absent from the text are absent from the map; callers must treat
// a missing key as "no data available", not as an error.
func IdentifySections(lines []string) map[string]int {
	sections := make(map[string]int)

	for i, line := range lines {
		upper := strings.ToUpper(strings.TrimSpace(line))
		if upper == "" {
			continue
		}
		for name, keywords := range sectionKeywords {
			if _, seen := sections[name]; seen {
				continue
			}
			for _, keyword := range keywords {
				if strings.Contains(upper, keyword) {
					sections[name] = i
					break
				}
			}
		}
	}

	return sections
}

// sectionEnd returns the line index where the named section ends: the
// smallest start index of any other section that begins after it, or the
// total line count if the section runs to the end of the document.
func sectionEnd(sections map[string]int, name string, totalLines int) int {
	start, ok := sections[name]
	if !ok {
		return totalLines
	}

	end := totalLines
	for other, idx := range sections {
		if other != name && idx > start && idx < end {
			end = idx
		}
	}
	return end
}

// sectionLines slices out the lines belonging to the named section,
// including its header line. Returns nil if the section was not detected.
func sectionLines(lines []string, sections map[string]int, name string) []string {
	start, ok := sections[name]
	if !ok {
		return nil
	}
	end := sectionEnd(sections, name, len(lines))
	return lines[start:end]
}
