package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// roleHeaderKeywords mark a pipe-delimited line as the start of a new role.
var roleHeaderKeywords = []string{
	"intern", "engineer", "developer", "manager", "assistant", "analyst", "lead",
}

// bulletMarkers are the accepted accomplishment line prefixes.
var bulletMarkers = []string{"•", "-", "*"}

// splitterState names the states of the role-block line scanner.
type splitterState int

const (
	// stateSeekingHeader: no role header seen yet; non-header lines are discarded.
	stateSeekingHeader splitterState = iota
	// stateInRole: accumulating lines into the current role block.
	stateInRole
)

// isRoleHeader reports whether a line opens a new role block: it must be
// pipe-delimited and contain at least one role keyword. Resumes that do not
// use pipe-delimited headers yield zero blocks by design; callers fall back
// to other data sources.
func isRoleHeader(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return containsAnyKeyword(strings.ToLower(line), roleHeaderKeywords)
}

// SplitIntoRoles splits the experience section's lines into one raw text
// block per detected role. Blank lines are skipped; lines before the first
// header are discarded.
func SplitIntoRoles(lines []string) []string {
	var blocks []string
	var current []string
	state := stateSeekingHeader

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch state {
		case stateSeekingHeader:
			if isRoleHeader(line) {
				current = []string{line}
				state = stateInRole
			}
		case stateInRole:
			if isRoleHeader(line) {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = []string{line}
			} else {
				current = append(current, line)
			}
		}
	}

	if state == stateInRole {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	return blocks
}

// ParseRoleBlock parses one role block (header line plus bullet lines) into
// a structured record. A block without a header yields nil, signalling the
// caller to skip it; this never errors.
func ParseRoleBlock(block string) *types.RoleRecord {
	lines := strings.Split(block, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	record := &types.RoleRecord{RawText: block}
	parseRoleHeader(lines[0], record)

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		bullet, ok := stripBulletMarker(line)
		if !ok {
			continue
		}
		appendAccomplishment(record, bullet)
	}

	for _, acc := range record.Accomplishments {
		if acc.HasQuantifier {
			record.KPIs = append(record.KPIs, acc.Text)
		}
		if containsAnyKeyword(strings.ToLower(acc.Text), scopeKeywords) {
			record.ScopeIndicators = append(record.ScopeIndicators, acc.Text)
		}
	}

	return record
}

// parseRoleHeader fills title/company/location/dates from a pipe-delimited
// header line. Missing trailing segments are simply left empty.
func parseRoleHeader(header string, record *types.RoleRecord) {
	parts := strings.Split(header, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) > 0 {
		record.RoleTitle = parts[0]
	}
	if len(parts) > 1 {
		record.Company = parts[1]
	}
	if len(parts) > 2 {
		record.Location = parts[2]
	}
	if len(parts) > 3 {
		record.DateRange = parts[3]
	}

	record.StartDate, record.EndDate = parseDateRange(record.DateRange)
}

// appendAccomplishment records one bullet and updates the role's derived
// fields (quantified outcomes, tech stack, team context, contributions).
func appendAccomplishment(record *types.RoleRecord, bullet string) {
	bulletLower := strings.ToLower(bullet)

	quantified := hasQuantifier(bullet)
	if quantified {
		record.QuantifiedOutcomes = append(record.QuantifiedOutcomes, types.QuantifiedOutcome{
			Metric: bullet,
			Values: findQuantifierTokens(bullet),
		})
	}

	tech := findTechMentions(bulletLower)
	for _, t := range tech {
		if !containsString(record.TechStack, t) {
			record.TechStack = append(record.TechStack, t)
		}
	}

	if size := findTeamSize(bullet); size > 0 {
		record.TeamContext = types.TeamContext{Size: size, Description: bullet}
	}

	personal := hasContributionVerb(bulletLower)
	if personal {
		record.PersonalContributions = append(record.PersonalContributions, bullet)
	}

	record.Accomplishments = append(record.Accomplishments, types.AccomplishmentRecord{
		Text:                   bullet,
		HasQuantifier:          quantified,
		HasTech:                len(tech) > 0,
		IsPersonalContribution: personal,
	})
}

// stripBulletMarker removes a leading bullet marker and returns the bullet
// text. Lines without a marker are not accomplishments.
func stripBulletMarker(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

// sortRolesByRecency orders roles most-recent-first by end date; open-ended
// ("Present"/"Current") roles sort before dated ones. The sort is stable so
// document order breaks ties.
func sortRolesByRecency(roles []types.RoleRecord) {
	sort.SliceStable(roles, func(i, j int) bool {
		return endDateOrdinal(roles[i].EndDate) > endDateOrdinal(roles[j].EndDate)
	})
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
