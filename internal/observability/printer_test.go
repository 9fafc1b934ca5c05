package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harris/atskit/internal/compare"
	"github.com/harris/atskit/internal/types"
)

func printedReport() *types.Report {
	return &types.Report{
		ContactInfo: types.ContactInfo{
			Name:     "John Smith",
			Email:    "john@example.com",
			Phone:    "555-123-4567",
			Location: "Austin, TX",
			Complete: false,
		},
		WorkExperience: types.WorkExperience{
			Jobs: []types.JobEntry{
				{Title: "Engineer", Company: "Acme", Dates: "2020-2023", Achievements: []string{"Led a team"}},
			},
			ParsedWell: true,
		},
		Education: types.Education{
			Institutions: []types.EducationEntry{{Degree: "BS", Institution: "MIT"}},
			ParsedWell:   true,
		},
		Skills: types.Skills{
			Categories: []types.SkillCategory{{Name: "Languages", Skills: []string{"Go", "Python"}}},
			ParsedWell: true,
		},
		ATSIssues:         []string{"Ampersands (&) should be written as 'and' for better ATS compatibility"},
		OptimizationScore: 65,
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintReport(printedReport())
	out := buf.String()

	assert.Contains(t, out, "ATS COMPATIBILITY TEST RESULTS")
	assert.Contains(t, out, "Name: ✅ John Smith")
	assert.Contains(t, out, "LinkedIn: ❌ Not found")
	assert.Contains(t, out, "1. Engineer at Acme")
	assert.Contains(t, out, "• BS from MIT")
	assert.Contains(t, out, "• Languages: 2 skills")
	assert.Contains(t, out, "1. Ampersands")
	assert.Contains(t, out, "ATS OPTIMIZATION SCORE: 65/100")
	assert.Contains(t, out, "Good ATS compatibility, some improvements needed")
}

func TestPrintReport_ScoreBands(t *testing.T) {
	rep := printedReport()

	var buf bytes.Buffer
	rep.OptimizationScore = 85
	NewPrinter(&buf, false).PrintReport(rep)
	assert.Contains(t, buf.String(), "Excellent ATS compatibility!")

	buf.Reset()
	rep.OptimizationScore = 40
	NewPrinter(&buf, false).PrintReport(rep)
	assert.Contains(t, buf.String(), "Poor ATS compatibility, significant improvements needed")
}

func TestPrintReport_Error(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintReport(&types.Report{Error: "extraction failed"})

	assert.Contains(t, buf.String(), "Error: extraction failed")
	assert.NotContains(t, buf.String(), "CONTACT INFORMATION")
}

func TestPrintReport_NoIssues(t *testing.T) {
	rep := printedReport()
	rep.ATSIssues = nil

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintReport(rep)

	assert.Contains(t, buf.String(), "No ATS issues detected!")
}

func TestPrintReport_CapsJobDetail(t *testing.T) {
	rep := printedReport()
	rep.WorkExperience.Jobs = []types.JobEntry{
		{Title: "A", Company: "W"}, {Title: "B", Company: "X"},
		{Title: "C", Company: "Y"}, {Title: "D", Company: "Z"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintReport(rep)
	out := buf.String()

	assert.Contains(t, out, "Jobs Found: 4")
	assert.Contains(t, out, "3. C at Y")
	assert.NotContains(t, out, "4. D at Z")
}

func TestPrintAuditReport(t *testing.T) {
	rep := &types.AuditReport{
		FileInfo: types.FileInfo{Pages: 1, FileSizeMB: 0.25},
		TextExtraction: types.TextExtraction{
			ExtractionQuality: types.ExtractionQuality{PrimaryLength: 2400, HasMeaningfulContent: true},
			TextStructure:     types.TextStructure{HasContactInfo: true, HasWorkExperience: true},
		},
		ATSCompatibility: types.ATSCompatibility{
			ATSFriendlyScore: 85,
			FormattingIssues: []string{"Bullet points may not parse well in some ATS systems"},
		},
		HumanReadability: types.HumanReadability{
			VisualStructure: types.VisualStructure{BulletPoints: 8, SectionBreaks: 4},
			ProfessionalPresentation: types.ProfessionalPresentation{
				ActionVerbs:      5,
				ProfessionalTone: true,
			},
		},
		Recommendations: []string{"Add more quantified achievements (numbers, percentages, dollar amounts)"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintAuditReport(rep)
	out := buf.String()

	assert.Contains(t, out, "RESUME ATS & READABILITY TEST RESULTS")
	assert.Contains(t, out, "Pages: 1")
	assert.Contains(t, out, "File Size: 0.25 MB")
	assert.Contains(t, out, "Text Length: 2400 characters")
	assert.Contains(t, out, "ATS Score: 85/100 ✅")
	assert.Contains(t, out, "Bullet points may not parse well")
	assert.Contains(t, out, "Professional Tone: ✅ Good")
	assert.Contains(t, out, "1. Add more quantified achievements")
	// Cross-check detail only appears in verbose mode.
	assert.NotContains(t, out, "Both Extractors Agree")
}

func TestPrintAuditReport_Verbose(t *testing.T) {
	rep := &types.AuditReport{
		TextExtraction: types.TextExtraction{
			ExtractionQuality: types.ExtractionQuality{SecondaryLength: 2300, ExtractionConsistency: true},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf, true).PrintAuditReport(rep)

	assert.Contains(t, buf.String(), "Secondary Length: 2300 characters")
	assert.Contains(t, buf.String(), "Both Extractors Agree: ✅")
}

func TestPrintComparison(t *testing.T) {
	c := &compare.Comparison{
		Sections: []compare.SectionDelta{
			{Label: "Contact Information", OldOK: false, NewOK: true},
			{Label: "Work Experience", CountNoun: "jobs", OldCount: 2, NewCount: 2, OldOK: true, NewOK: true},
		},
		OldIssues: []string{"Ampersands"},
		NewIssues: []string{},
		OldScore:  60,
		NewScore:  90,
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintComparison(c)
	out := buf.String()

	assert.Contains(t, out, "ATS Results Comparison")
	assert.Contains(t, out, "CONTACT INFORMATION")
	assert.Contains(t, out, "Original: 2 jobs")
	assert.Contains(t, out, "No issues in optimized version!")
	assert.Contains(t, out, "Improvement: +30 points")
	assert.Contains(t, out, "ATS compatibility improved by 30 points!")
	assert.Contains(t, out, "Overall improvement: 50.0%")
}

func TestPrintQuickAnalysis(t *testing.T) {
	a := types.QuickAnalysis{
		TextLength:    1200,
		WordCount:     200,
		HasEmail:      true,
		HasAmpersands: true,
		SectionsFound: 3,
		ATSScore:      75,
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintQuickAnalysis("resume.pdf", a)
	out := buf.String()

	assert.Contains(t, out, "ANALYSIS: resume.pdf")
	assert.Contains(t, out, "Ampersands (&): ❌ Found")
	assert.Contains(t, out, "Email: ✅ Found")
	assert.Contains(t, out, "Phone: ❌ Missing")
	assert.Contains(t, out, "Sections Found: 3 of 3")
	assert.Contains(t, out, "ATS Score: 75/100")
}
