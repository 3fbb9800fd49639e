package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// titlePatterns recognize lines that look like a professional title.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:software|engineer|developer|manager|director|lead|senior|junior|intern|assistant|analyst)`),
	regexp.MustCompile(`(?i)(?:product|project|data|systems|full.?stack|front.?end|back.?end)`),
}

// maxHeadlineLines bounds how far into the document the identity block may reach.
const maxHeadlineLines = 5

// ExtractHeadline pulls the identity block (name, title, contact) from the
// lines preceding the first detected section. The first non-empty line is
// taken as the name; the title is the first following line matching a role
// keyword, falling back to the first reasonably short line.
func ExtractHeadline(lines []string, sections map[string]int) types.Headline {
	firstSection := len(lines)
	for _, idx := range sections {
		if idx < firstSection {
			firstSection = idx
		}
	}

	limit := maxHeadlineLines
	if firstSection < limit {
		limit = firstSection
	}

	var headlineLines []string
	for i := 0; i < limit; i++ {
		if line := strings.TrimSpace(lines[i]); line != "" {
			headlineLines = append(headlineLines, line)
		}
	}

	if len(headlineLines) == 0 {
		return types.Headline{}
	}

	headline := types.Headline{Name: headlineLines[0]}

	for _, line := range headlineLines[1:] {
		if matchesAnyPattern(line, titlePatterns) {
			headline.Title = line
			break
		}
		if headline.Title == "" && len(line) < 100 {
			headline.Title = line
		}
	}

	if len(headlineLines) > 2 {
		headline.Contact = strings.Join(headlineLines[2:], " ")
	}

	return headline
}

func matchesAnyPattern(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
