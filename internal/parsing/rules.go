package parsing

import (
	"regexp"
	"strings"
)

// quantifierRule is one entry in the ordered quantifier rule table.
type quantifierRule struct {
	name    string
	pattern *regexp.Regexp
}

// quantifierRules detect measurable-impact mentions inside a bullet,
// evaluated in order with first-match-wins semantics.
var quantifierRules = []quantifierRule{
	{"percentage", regexp.MustCompile(`\d+%`)},
	{"currency", regexp.MustCompile(`\$\d+[KMB]?`)},
	{"number with plus", regexp.MustCompile(`\d+\+`)},
	{"suffixed number", regexp.MustCompile(`\d+[KMB]?`)},
	{"outcome verb with number", regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|saved|gained|achieved)\D*?\d+`)},
}

// quantifierTokenPattern extracts the individual numeric/percent/currency
// tokens for quantified-outcome records. Alternatives mirror the token-shaped
// rules above, most specific first so "40%" is not split into "40".
var quantifierTokenPattern = regexp.MustCompile(`\d+%|\$\d+[KMB]?|\d+\+|\d+[KMB]?`)

// techStackVocabulary is the fixed keyword list used for tech-stack
// containment checks. All entries are lowercase; bullets are lowercased
// before matching.
var techStackVocabulary = []string{
	"python", "javascript", "java", "react", "node", "sql", "postgresql", "mongodb",
	"docker", "kubernetes", "aws", "azure", "gcp", "git", "terraform", "ansible",
	"flask", "django", "express", "spring", "angular", "vue", "typescript",
	"scikit-learn", "tensorflow", "pytorch", "pandas", "numpy",
}

// contributionVerbs flag first-person ownership of the work described.
var contributionVerbs = []string{
	"led", "designed", "implemented", "created", "built", "developed", "initiated",
}

// scopeKeywords flag production or customer-facing impact.
var scopeKeywords = []string{
	"launched", "deployed", "production", "users", "customers", "stakeholders",
}

// recognitionKeywords flag award/recognition mentions inside role bullets.
var recognitionKeywords = []string{
	"award", "prize", "recognition", "outstanding", "excellence",
}

// teamSizePattern captures an integer following a team/leadership phrase.
var teamSizePattern = regexp.MustCompile(`(?i)(?:team of|team|led|collaborated with|worked with)\s+(\d+)`)

// hasQuantifier reports whether any quantifier rule matches the bullet.
// Rules are consulted in table order; the first match decides.
func hasQuantifier(bullet string) bool {
	for _, rule := range quantifierRules {
		if rule.pattern.MatchString(bullet) {
			return true
		}
	}
	return false
}

// findQuantifierTokens returns the numeric/percent/currency tokens found in
// the bullet, left to right.
func findQuantifierTokens(bullet string) []string {
	return quantifierTokenPattern.FindAllString(bullet, -1)
}

// findTechMentions returns the vocabulary entries contained in the bullet.
func findTechMentions(bulletLower string) []string {
	var found []string
	for _, tech := range techStackVocabulary {
		if strings.Contains(bulletLower, tech) {
			found = append(found, tech)
		}
	}
	return found
}

// hasContributionVerb reports whether the lowercased bullet contains any
// first-person ownership verb.
func hasContributionVerb(bulletLower string) bool {
	return containsAnyKeyword(bulletLower, contributionVerbs)
}

// findTeamSize extracts a team-size integer from the bullet, or 0 when no
// team mention is present.
func findTeamSize(bullet string) int {
	m := teamSizePattern.FindStringSubmatch(bullet)
	if m == nil {
		return 0
	}
	size := 0
	for _, r := range m[1] {
		size = size*10 + int(r-'0')
	}
	return size
}

// containsAnyKeyword reports whether s contains any of the keywords.
// Both sides are expected to already be lowercase.
func containsAnyKeyword(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
