package types

// Match types distinguish which embedding pool a result came from.
const (
	MatchTypeWorkExperience = "work_experience"
)

// MatchResult is one accomplishment ranked against a semantic query.
type MatchResult struct {
	RoleTitle      string  `json:"role_title"`
	Company        string  `json:"company"`
	Accomplishment string  `json:"accomplishment"`
	Similarity     float64 `json:"similarity"`
	MatchType      string  `json:"match_type"`
}

// ClusterMember is one accomplishment assigned to a theme cluster.
type ClusterMember struct {
	RoleTitle string `json:"role_title"`
	Company   string `json:"company"`
	Text      string `json:"text"`
}
