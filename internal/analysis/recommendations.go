package analysis

import (
	"fmt"

	"github.com/harris/atskit/internal/types"
)

// Recommendation thresholds.
const (
	minGoodScore    = 70
	minBulletPoints = 5
	minSectionBreak = 3
)

// GenerateRecommendations derives followup suggestions from a completed
// audit. Order is deterministic: score first, then formatting issues, then
// readability, then content.
func GenerateRecommendations(report *types.AuditReport) []string {
	recs := []string{}

	if report.ATSCompatibility.ATSFriendlyScore < minGoodScore {
		recs = append(recs, "Consider improving ATS compatibility - current score is below 70")
	}
	for _, issue := range report.ATSCompatibility.FormattingIssues {
		recs = append(recs, fmt.Sprintf("ATS Issue: %s", issue))
	}

	visual := report.HumanReadability.VisualStructure
	if visual.BulletPoints < minBulletPoints {
		recs = append(recs, "Consider adding more bullet points for better readability")
	}
	if visual.SectionBreaks < minSectionBreak {
		recs = append(recs, "Consider adding more section breaks for better organization")
	}

	if !report.HumanReadability.ProfessionalPresentation.HasQuantifiedAchievements {
		recs = append(recs, "Add more quantified achievements (numbers, percentages, dollar amounts)")
	}

	return recs
}
