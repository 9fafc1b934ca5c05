package analysis

import "github.com/harris/atskit/internal/types"

// Weights is one historical point allocation for the heuristic parse score.
// The variants drifted apart organically; each set is kept as-is so new runs
// remain comparable with the JSON output of the script that used it.
type Weights struct {
	ContactComplete int
	WorkParsed      int
	EducationParsed int
	SkillsParsed    int
	ZeroIssues      int
}

// AdvancedWeights is the allocation used by the full heuristic parse.
// The components sum to 100 by construction.
var AdvancedWeights = Weights{
	ContactComplete: 25,
	WorkParsed:      30,
	EducationParsed: 20,
	SkillsParsed:    15,
	ZeroIssues:      10,
}

// Score sums the weights of the structural elements that parsed well.
// Monotonic: completing a missing field can only hold or raise the total.
func Score(report *types.Report, w Weights) int {
	score := 0
	if report.ContactInfo.Complete {
		score += w.ContactComplete
	}
	if report.WorkExperience.ParsedWell {
		score += w.WorkParsed
	}
	if report.Education.ParsedWell {
		score += w.EducationParsed
	}
	if report.Skills.ParsedWell {
		score += w.SkillsParsed
	}
	if len(report.ATSIssues) == 0 {
		score += w.ZeroIssues
	}
	return score
}

// PresenceWeights is the allocation used by the audit command, which scores
// section presence rather than parse quality.
type PresenceWeights struct {
	MeaningfulContent int
	ContactInfo       int
	WorkExperience    int
	Education         int
	Skills            int
}

// AuditWeights is the audit command's allocation (sums to 100).
var AuditWeights = PresenceWeights{
	MeaningfulContent: 30,
	ContactInfo:       20,
	WorkExperience:    20,
	Education:         15,
	Skills:            15,
}

// PresenceScore sums the weights of the structural elements detected in the
// extracted text.
func PresenceScore(quality types.ExtractionQuality, structure types.TextStructure, w PresenceWeights) int {
	score := 0
	if quality.HasMeaningfulContent {
		score += w.MeaningfulContent
	}
	if structure.HasContactInfo {
		score += w.ContactInfo
	}
	if structure.HasWorkExperience {
		score += w.WorkExperience
	}
	if structure.HasEducation {
		score += w.Education
	}
	if structure.HasSkills {
		score += w.Skills
	}
	return score
}

// QuickScore is the diff command's allocation: email 25, phone 25, all three
// sections 25, plus 10/10/5 for clean characters. Yet another historical
// weight set, again preserved rather than unified.
func QuickScore(a types.QuickAnalysis) int {
	score := 0
	if a.HasEmail {
		score += 25
	}
	if a.HasPhone {
		score += 25
	}
	if a.SectionsFound >= 3 {
		score += 25
	}
	if !a.HasAmpersands {
		score += 10
	}
	if !a.HasSpecialBullets {
		score += 10
	}
	if !a.HasNonASCII {
		score += 5
	}
	return score
}
