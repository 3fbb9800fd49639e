package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// standoutGPA is the threshold at or above which a GPA marks the education
// entry as standout.
const standoutGPA = 3.5

// degreeRule is one entry in the ordered degree-detection rule table.
type degreeRule struct {
	name    string
	pattern *regexp.Regexp
}

var degreeRules = []degreeRule{
	{"degree type with field", regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|Associate).*?(?:in|of)\s+([^|\n]+)`)},
	{"abbreviation with field", regexp.MustCompile(`([A-Z][A-Za-z.]*\.[A-Za-z.]*)\s+in\s+([^|\n]+)`)},
}

var (
	institutionPattern = regexp.MustCompile(`\|\s*([^|\n]+)`)
	gpaPattern         = regexp.MustCompile(`(?i)GPA[:\s]+(\d+\.\d+)`)
	honorsPattern      = regexp.MustCompile(`(?i)(?:honors|summa|magna|cum laude|dean's list|scholarship)`)
)

// ExtractEducation parses degree, institution, and GPA from the education
// section and flags standout entries (high GPA or academic honors). A
// missing education section yields an all-empty record, never an error.
func ExtractEducation(lines []string, sections map[string]int) types.Education {
	education := types.Education{StandoutReason: []string{}}

	section := sectionLines(lines, sections, SectionEducation)
	if section == nil {
		return education
	}
	text := strings.Join(section, "\n")

	for _, rule := range degreeRules {
		if m := rule.pattern.FindString(text); m != "" {
			education.Degree = strings.TrimSpace(m)
			break
		}
	}

	if m := institutionPattern.FindStringSubmatch(text); m != nil {
		education.Institution = strings.TrimSpace(m[1])
	}

	if m := gpaPattern.FindStringSubmatch(text); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			education.GPA = strconv.FormatFloat(gpa, 'f', -1, 64)
			if gpa >= standoutGPA {
				education.IsStandout = true
				education.StandoutReason = append(education.StandoutReason, fmt.Sprintf("High GPA: %s", education.GPA))
			}
		}
	}

	if honorsPattern.MatchString(text) {
		education.IsStandout = true
		education.StandoutReason = append(education.StandoutReason, "Academic honors/awards")
	}

	return education
}
