package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harris/atskit/internal/types"
)

func reportWithScore(score int, issues ...string) *types.Report {
	return &types.Report{
		ContactInfo:       types.ContactInfo{Complete: true},
		WorkExperience:    types.WorkExperience{Jobs: make([]types.JobEntry, 2), ParsedWell: true},
		Education:         types.Education{Institutions: make([]types.EducationEntry, 1), ParsedWell: true},
		Skills:            types.Skills{Categories: make([]types.SkillCategory, 3), ParsedWell: true},
		ATSIssues:         issues,
		OptimizationScore: score,
	}
}

func TestReports_SectionDeltas(t *testing.T) {
	oldReport := reportWithScore(60, "Ampersands")
	oldReport.ContactInfo.Complete = false
	newReport := reportWithScore(90)

	c := Reports(oldReport, newReport)

	require.Len(t, c.Sections, 4)

	contact := c.Sections[0]
	assert.Equal(t, "Contact Information", contact.Label)
	assert.Empty(t, contact.CountNoun)
	assert.False(t, contact.OldOK)
	assert.True(t, contact.NewOK)

	work := c.Sections[1]
	assert.Equal(t, "Work Experience", work.Label)
	assert.Equal(t, "jobs", work.CountNoun)
	assert.Equal(t, 2, work.OldCount)
	assert.Equal(t, 2, work.NewCount)

	assert.Equal(t, "institutions", c.Sections[2].CountNoun)
	assert.Equal(t, "categories", c.Sections[3].CountNoun)

	assert.Equal(t, []string{"Ampersands"}, c.OldIssues)
	assert.Empty(t, c.NewIssues)
	assert.Equal(t, 60, c.OldScore)
	assert.Equal(t, 90, c.NewScore)
}

func TestComparison_Improvement(t *testing.T) {
	c := Reports(reportWithScore(60), reportWithScore(90))

	assert.Equal(t, 30, c.Improvement())
	assert.InDelta(t, 50.0, c.PercentImprovement(), 0.001)
}

func TestComparison_Regression(t *testing.T) {
	c := Reports(reportWithScore(90), reportWithScore(60))

	assert.Equal(t, -30, c.Improvement())
}

func TestComparison_ZeroOldScore(t *testing.T) {
	c := Reports(reportWithScore(0), reportWithScore(50))

	// Division guards against a zero baseline.
	assert.InDelta(t, 5000.0, c.PercentImprovement(), 0.001)
}
