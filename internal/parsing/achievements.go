package parsing

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// awardKeywords decide whether a dedicated-section bullet is an award.
var awardKeywords = []string{"award", "prize", "honor"}

// ExtractAchievements collects bullets from a dedicated achievements section
// plus recognition mentions embedded in role accomplishments. Section
// entries come first, then work-recognition entries in role order.
func ExtractAchievements(lines []string, sections map[string]int, roles []types.RoleRecord) []types.AchievementRecord {
	achievements := []types.AchievementRecord{}

	section := sectionLines(lines, sections, SectionAchievements)
	for i, line := range section {
		if i == 0 {
			continue // header line
		}
		bullet, ok := stripBulletMarker(strings.TrimSpace(line))
		if !ok || bullet == "" {
			continue
		}
		achievementType := types.AchievementTypeAchievement
		if containsAnyKeyword(strings.ToLower(bullet), awardKeywords) {
			achievementType = types.AchievementTypeAward
		}
		achievements = append(achievements, types.AchievementRecord{
			Text: bullet,
			Type: achievementType,
		})
	}

	for _, role := range roles {
		for _, acc := range role.Accomplishments {
			if containsAnyKeyword(strings.ToLower(acc.Text), recognitionKeywords) {
				achievements = append(achievements, types.AchievementRecord{
					Text:    acc.Text,
					Type:    types.AchievementTypeWorkRecognition,
					Role:    role.RoleTitle,
					Company: role.Company,
				})
			}
		}
	}

	return achievements
}
