// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ParsedResume is the root aggregate produced by one parsing run. It is
// created synchronously from raw resume text and never mutated afterward
// by the parsing subsystem; downstream consumers own any enrichment.
type ParsedResume struct {
	Headline       Headline            `json:"headline"`
	WorkExperience []RoleRecord        `json:"work_experience"`
	Skills         Skills              `json:"skills"`
	Education      Education           `json:"education"`
	Achievements   []AchievementRecord `json:"achievements"`
	Embeddings     EmbeddingSet        `json:"embeddings"`
	ParsedAt       time.Time           `json:"parsed_at"`
}

// Headline is the best-effort identity block from the top of the document.
type Headline struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Contact string `json:"contact"`
}

// RoleRecord represents one job/role extracted from the experience section.
type RoleRecord struct {
	RoleTitle             string                 `json:"role_title"`
	Company               string                 `json:"company"`
	Location              string                 `json:"location"`
	StartDate             string                 `json:"start_date"`
	EndDate               string                 `json:"end_date"`
	DateRange             string                 `json:"date_range"`
	Accomplishments       []AccomplishmentRecord `json:"accomplishments"`
	QuantifiedOutcomes    []QuantifiedOutcome    `json:"quantified_outcomes"`
	KPIs                  []string               `json:"kpis"`
	TechStack             []string               `json:"tech_stack"`
	TeamContext           TeamContext            `json:"team_context"`
	ScopeIndicators       []string               `json:"scope_indicators"`
	PersonalContributions []string               `json:"personal_contributions"`
	RawText               string                 `json:"raw_text"`
}

// AccomplishmentRecord is one bullet-point claim within a role, marker stripped.
type AccomplishmentRecord struct {
	Text                   string `json:"text"`
	HasQuantifier          bool   `json:"has_quantifier"`
	HasTech                bool   `json:"has_tech"`
	IsPersonalContribution bool   `json:"is_personal_contribution"`
}

// QuantifiedOutcome pairs a bullet with the numeric/percent/currency tokens found in it.
type QuantifiedOutcome struct {
	Metric string   `json:"metric"`
	Values []string `json:"values"`
}

// TeamContext captures team-size mentions within a role's bullets.
// Size is zero when no team-size mention was found.
type TeamContext struct {
	Size        int    `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skills holds categorized skill lists plus a deduplicated flat set and
// a skill-to-roles cross-reference.
type Skills struct {
	ByCategory    map[string][]string  `json:"by_category"`
	All           []string             `json:"all"`
	LinkedToRoles map[string][]RoleRef `json:"linked_to_roles"`
}

// RoleRef identifies a role a skill was linked to.
type RoleRef struct {
	RoleTitle string `json:"role_title"`
	Company   string `json:"company"`
}

// Education captures degree/institution details and whether the entry is
// notable enough to surface in generated narratives.
type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	GraduationDate string   `json:"graduation_date"`
	GPA            string   `json:"gpa"`
	IsStandout     bool     `json:"is_standout"`
	StandoutReason []string `json:"standout_reasons"`
}

// Achievement types distinguish where the achievement was found.
const (
	AchievementTypeAward           = "award"
	AchievementTypeAchievement     = "achievement"
	AchievementTypeWorkRecognition = "work_recognition"
)

// AchievementRecord is one standalone achievement or recognition mention.
// Role and Company are set only for work_recognition entries.
type AchievementRecord struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
}

// EmbeddingSet holds all embeddings generated for one parsed resume.
type EmbeddingSet struct {
	WorkExperience []RoleEmbeddingBlock `json:"work_experience"`
	Achievements   EmbeddingBlock       `json:"achievements"`
}

// RoleEmbeddingBlock holds one vector per accomplishment of a role.
// Embeddings[i] always corresponds to Texts[i].
type RoleEmbeddingBlock struct {
	RoleTitle  string      `json:"role_title"`
	Company    string      `json:"company"`
	Embeddings [][]float32 `json:"embeddings"`
	Texts      []string    `json:"texts"`
}

// EmbeddingBlock is a flat batch of vectors with their source texts.
type EmbeddingBlock struct {
	Embeddings [][]float32 `json:"embeddings"`
	Texts      []string    `json:"texts"`
}

// IsEmpty reports whether the block carries no vectors.
func (b EmbeddingBlock) IsEmpty() bool {
	return len(b.Embeddings) == 0
}
