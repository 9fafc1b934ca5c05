// Package observability renders human-readable console reports.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/harris/atskit/internal/compare"
	"github.com/harris/atskit/internal/types"
)

const (
	bannerWidth = 60
	// maxJobsToShow limits the per-job detail in console output
	maxJobsToShow = 3
)

// Score bands for the closing verdict line.
const (
	excellentScore = 80
	goodScore      = 60
)

// Printer handles formatted report output
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a Printer that writes to the given writer
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	p.printf("\n%s\n%s\n%s\n", line, title, line)
}

func check(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func orNotFound(s string) string {
	if s == "" {
		return "Not found"
	}
	return s
}

// PrintReport renders a full heuristic parse report.
func (p *Printer) PrintReport(r *types.Report) {
	p.banner("ATS COMPATIBILITY TEST RESULTS")

	if r.Error != "" {
		p.printf("Error: %s\n", r.Error)
		return
	}

	contact := r.ContactInfo
	p.printf("\n📞 CONTACT INFORMATION:\n")
	p.printf("  Name: %s %s\n", check(contact.Name != ""), orNotFound(contact.Name))
	p.printf("  Email: %s %s\n", check(contact.Email != ""), orNotFound(contact.Email))
	p.printf("  Phone: %s %s\n", check(contact.Phone != ""), orNotFound(contact.Phone))
	p.printf("  Location: %s %s\n", check(contact.Location != ""), orNotFound(contact.Location))
	p.printf("  LinkedIn: %s %s\n", check(contact.LinkedIn != ""), orNotFound(contact.LinkedIn))
	p.printf("  Complete: %s\n", check(contact.Complete))

	work := r.WorkExperience
	p.printf("\n💼 WORK EXPERIENCE:\n")
	p.printf("  Jobs Found: %d\n", len(work.Jobs))
	p.printf("  Parsed Well: %s\n", check(work.ParsedWell))
	for i, job := range work.Jobs {
		if i == maxJobsToShow {
			break
		}
		p.printf("    %d. %s at %s\n", i+1, job.Title, job.Company)
		p.printf("       Dates: %s\n", job.Dates)
		p.printf("       Achievements: %d\n", len(job.Achievements))
	}
	p.printIssues(work.Issues)

	education := r.Education
	p.printf("\n🎓 EDUCATION:\n")
	p.printf("  Institutions Found: %d\n", len(education.Institutions))
	p.printf("  Parsed Well: %s\n", check(education.ParsedWell))
	for _, inst := range education.Institutions {
		p.printf("    • %s from %s\n", inst.Degree, inst.Institution)
	}
	p.printIssues(education.Issues)

	skills := r.Skills
	p.printf("\n🛠️ SKILLS:\n")
	p.printf("  Categories Found: %d\n", len(skills.Categories))
	p.printf("  Parsed Well: %s\n", check(skills.ParsedWell))
	for _, cat := range skills.Categories {
		p.printf("    • %s: %d skills\n", cat.Name, len(cat.Skills))
	}
	p.printIssues(skills.Issues)

	p.printf("\n⚠️ ATS ISSUES:\n")
	if len(r.ATSIssues) > 0 {
		for i, issue := range r.ATSIssues {
			p.printf("  %d. %s\n", i+1, issue)
		}
	} else {
		p.printf("  ✅ No ATS issues detected!\n")
	}

	p.printf("\n📊 ATS OPTIMIZATION SCORE: %d/100\n", r.OptimizationScore)
	switch {
	case r.OptimizationScore >= excellentScore:
		p.printf("  ✅ Excellent ATS compatibility!\n")
	case r.OptimizationScore >= goodScore:
		p.printf("  ⚠️ Good ATS compatibility, some improvements needed\n")
	default:
		p.printf("  ❌ Poor ATS compatibility, significant improvements needed\n")
	}
}

func (p *Printer) printIssues(issues []string) {
	if len(issues) == 0 {
		return
	}
	p.printf("  Issues:\n")
	for _, issue := range issues {
		p.printf("    ⚠️  %s\n", issue)
	}
}

// PrintAuditReport renders a full extraction/compatibility/readability audit.
func (p *Printer) PrintAuditReport(r *types.AuditReport) {
	p.banner("RESUME ATS & READABILITY TEST RESULTS")

	if r.Error != "" {
		p.printf("Error: %s\n", r.Error)
		return
	}

	p.printf("\n📄 FILE INFORMATION:\n")
	p.printf("  Pages: %d\n", r.FileInfo.Pages)
	p.printf("  File Size: %.2f MB\n", r.FileInfo.FileSizeMB)
	p.printf("  Encrypted: %t\n", r.FileInfo.Encrypted)

	quality := r.TextExtraction.ExtractionQuality
	structure := r.TextExtraction.TextStructure
	p.printf("\n📝 TEXT EXTRACTION:\n")
	p.printf("  Text Length: %d characters\n", quality.PrimaryLength)
	p.printf("  Extraction Quality: %s\n", goodOrPoor(quality.HasMeaningfulContent))
	p.printf("  Contact Info: %s\n", presentOrMissing(structure.HasContactInfo))
	p.printf("  Work Experience: %s\n", presentOrMissing(structure.HasWorkExperience))
	p.printf("  Education: %s\n", presentOrMissing(structure.HasEducation))
	p.printf("  Skills: %s\n", presentOrMissing(structure.HasSkills))
	if p.verbose {
		p.printf("  Secondary Length: %d characters\n", quality.SecondaryLength)
		p.printf("  Length Difference: %d characters\n", quality.TextDifference)
		p.printf("  Both Extractors Agree: %s\n", check(quality.ExtractionConsistency))
	}

	ats := r.ATSCompatibility
	p.printf("\n🤖 ATS COMPATIBILITY:\n")
	p.printf("  ATS Score: %d/100 %s\n", ats.ATSFriendlyScore, check(ats.ATSFriendlyScore >= 70))
	p.printf("  Total Words: %d\n", ats.TextReadability.TotalWords)
	p.printf("  Special Characters: %d\n", ats.TextReadability.SpecialCharacters)
	if len(ats.FormattingIssues) > 0 {
		p.printf("  Issues Found:\n")
		for _, issue := range ats.FormattingIssues {
			p.printf("    ⚠️  %s\n", issue)
		}
	} else {
		p.printf("  ✅ No formatting issues detected\n")
	}

	human := r.HumanReadability
	p.printf("\n👁️ HUMAN READABILITY:\n")
	p.printf("  Section Breaks: %d\n", human.VisualStructure.SectionBreaks)
	p.printf("  Bullet Points: %d\n", human.VisualStructure.BulletPoints)
	p.printf("  Bold Sections: %d\n", human.VisualStructure.BoldSections)
	p.printf("  Quantified Achievements: %s\n",
		presentOrMissing(human.ProfessionalPresentation.HasQuantifiedAchievements))
	p.printf("  Action Verbs: %d\n", human.ProfessionalPresentation.ActionVerbs)
	if human.ProfessionalPresentation.ProfessionalTone {
		p.printf("  Professional Tone: ✅ Good\n")
	} else {
		p.printf("  Professional Tone: ❌ Needs Improvement\n")
	}

	p.printf("\n💡 RECOMMENDATIONS:\n")
	if len(r.Recommendations) > 0 {
		for i, rec := range r.Recommendations {
			p.printf("  %d. %s\n", i+1, rec)
		}
	} else {
		p.printf("  ✅ No specific recommendations - resume looks good!\n")
	}
}

func goodOrPoor(ok bool) string {
	if ok {
		return "✅ Good"
	}
	return "❌ Poor"
}

func presentOrMissing(ok bool) string {
	if ok {
		return "✅ Present"
	}
	return "❌ Missing"
}

// PrintComparison renders a report-vs-report diff.
func (p *Printer) PrintComparison(c *compare.Comparison) {
	p.printf("📊 ATS Results Comparison\n%s\n", strings.Repeat("=", 50))

	for _, s := range c.Sections {
		p.printf("\n🔍 %s:\n", strings.ToUpper(s.Label))
		if s.CountNoun == "" {
			p.printf("  Original: %s\n", check(s.OldOK))
			p.printf("  Optimized: %s\n", check(s.NewOK))
			continue
		}
		p.printf("  Original: %d %s, %s parsed\n", s.OldCount, s.CountNoun, check(s.OldOK))
		p.printf("  Optimized: %d %s, %s parsed\n", s.NewCount, s.CountNoun, check(s.NewOK))
	}

	p.printf("\n⚠️ ATS ISSUES:\n")
	p.printf("  Original: %d issues\n", len(c.OldIssues))
	p.printf("  Optimized: %d issues\n", len(c.NewIssues))
	p.printNumberedIssues("Original issues", c.OldIssues)
	if len(c.NewIssues) > 0 {
		p.printNumberedIssues("Optimized issues", c.NewIssues)
	} else {
		p.printf("  ✅ No issues in optimized version!\n")
	}

	p.printf("\n📊 ATS SCORES:\n")
	p.printf("  Original: %d/100\n", c.OldScore)
	p.printf("  Optimized: %d/100\n", c.NewScore)
	p.printf("  Improvement: %+d points\n", c.Improvement())

	p.printf("\n%s\n🎉 SUMMARY:\n", strings.Repeat("=", 50))
	if c.Improvement() > 0 {
		p.printf("✅ ATS compatibility improved by %d points!\n", c.Improvement())
	} else {
		p.printf("⚠️ No improvement in ATS score\n")
	}
	p.printf("\n📈 Overall improvement: %.1f%%\n", c.PercentImprovement())
}

func (p *Printer) printNumberedIssues(label string, issues []string) {
	if len(issues) == 0 {
		return
	}
	p.printf("  %s:\n", label)
	for i, issue := range issues {
		p.printf("    %d. %s\n", i+1, issue)
	}
}

// PrintQuickAnalysis renders one side of a PDF diff.
func (p *Printer) PrintQuickAnalysis(name string, a types.QuickAnalysis) {
	p.banner(fmt.Sprintf("ANALYSIS: %s", name))

	p.printf("Text Length: %d characters\n", a.TextLength)
	p.printf("Word Count: %d words\n", a.WordCount)
	p.printf("Special Characters: %d\n", a.SpecialChars)

	p.printf("\nATS Compatibility Checks:\n")
	p.printf("  Ampersands (&): %s\n", foundOrNone(a.HasAmpersands))
	p.printf("  Special Bullets: %s\n", foundOrNone(a.HasSpecialBullets))
	p.printf("  Non-ASCII Chars: %s\n", foundOrNone(a.HasNonASCII))

	p.printf("\nContact Information:\n")
	p.printf("  Email: %s\n", foundOrMissing(a.HasEmail))
	p.printf("  Phone: %s\n", foundOrMissing(a.HasPhone))

	p.printf("\nSections Found: %d of 3\n", a.SectionsFound)
	p.printf("\nATS Score: %d/100\n", a.ATSScore)
}

func foundOrNone(found bool) string {
	if found {
		return "❌ Found"
	}
	return "✅ None"
}

func foundOrMissing(found bool) string {
	if found {
		return "✅ Found"
	}
	return "❌ Missing"
}
