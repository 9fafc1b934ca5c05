// Package compare diffs two parse reports or two analyzed resumes.
package compare

import "github.com/harris/atskit/internal/types"

// SectionDelta captures one section's before/after parse state
type SectionDelta struct {
	Label     string `json:"label"`
	CountNoun string `json:"count_noun"`
	OldOK     bool   `json:"old_ok"`
	NewOK     bool   `json:"new_ok"`
	OldCount  int    `json:"old_count"`
	NewCount  int    `json:"new_count"`
}

// Comparison is the result of diffing two parse reports
type Comparison struct {
	Sections  []SectionDelta `json:"sections"`
	OldIssues []string       `json:"old_issues"`
	NewIssues []string       `json:"new_issues"`
	OldScore  int            `json:"old_score"`
	NewScore  int            `json:"new_score"`
}

// Reports diffs the old report against the new one, section by section.
func Reports(oldReport, newReport *types.Report) *Comparison {
	return &Comparison{
		Sections: []SectionDelta{
			{
				Label: "Contact Information",
				OldOK: oldReport.ContactInfo.Complete,
				NewOK: newReport.ContactInfo.Complete,
			},
			{
				Label:     "Work Experience",
				CountNoun: "jobs",
				OldOK:     oldReport.WorkExperience.ParsedWell,
				NewOK:     newReport.WorkExperience.ParsedWell,
				OldCount:  len(oldReport.WorkExperience.Jobs),
				NewCount:  len(newReport.WorkExperience.Jobs),
			},
			{
				Label:     "Education",
				CountNoun: "institutions",
				OldOK:     oldReport.Education.ParsedWell,
				NewOK:     newReport.Education.ParsedWell,
				OldCount:  len(oldReport.Education.Institutions),
				NewCount:  len(newReport.Education.Institutions),
			},
			{
				Label:     "Skills",
				CountNoun: "categories",
				OldOK:     oldReport.Skills.ParsedWell,
				NewOK:     newReport.Skills.ParsedWell,
				OldCount:  len(oldReport.Skills.Categories),
				NewCount:  len(newReport.Skills.Categories),
			},
		},
		OldIssues: oldReport.ATSIssues,
		NewIssues: newReport.ATSIssues,
		OldScore:  oldReport.OptimizationScore,
		NewScore:  newReport.OptimizationScore,
	}
}

// Improvement is the score delta, negative when the new report regressed.
func (c *Comparison) Improvement() int {
	return c.NewScore - c.OldScore
}

// PercentImprovement expresses the delta relative to the old score.
func (c *Comparison) PercentImprovement() float64 {
	return float64(c.Improvement()) / float64(max(c.OldScore, 1)) * 100
}
