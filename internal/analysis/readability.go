package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harris/atskit/internal/parsing"
	"github.com/harris/atskit/internal/types"
)

// meaningfulContentChars is the minimum trimmed text length for an extraction
// to count as meaningful.
const meaningfulContentChars = 100

// resumeKeywords is the fixed keyword list used for density analysis.
var resumeKeywords = []string{
	"management", "leadership", "strategy", "analysis", "development",
	"project", "team", "client", "business", "technical", "software",
	"data", "marketing", "sales", "operations", "finance", "design",
}

var (
	workKeywords      = []string{"experience", "employment", "work history", "professional", "career"}
	educationKeywords = []string{"education", "university", "college", "degree", "bachelor", "master", "phd"}
	skillsKeywords    = []string{"skills", "technical", "proficiencies", "competencies"}

	datePattern         = regexp.MustCompile(`\d{4}|\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{4}`)
	yearPattern         = regexp.MustCompile(`\d{4}`)
	specialCharPattern  = regexp.MustCompile(`[^\w\s@.-]`)
	boldSpanPattern     = regexp.MustCompile(`\*\*.*?\*\*`)
	clearHeadingPattern = regexp.MustCompile(`(?m)^[A-Z][A-Z\s]+$`)
	quantifiedPattern   = regexp.MustCompile(`\$[\d,]+|\d+%|\d+x|\d+\+`)
	actionVerbPattern   = regexp.MustCompile(`\b(led|managed|developed|created|built|launched|increased|improved|saved|unlocked)\b`)
)

var unprofessionalWords = []string{"awesome", "cool", "amazing", "fantastic", "incredible"}

// CompareExtractions cross-checks the two PDF extraction paths.
func CompareExtractions(primary, secondary string) types.ExtractionQuality {
	diff := len(primary) - len(secondary)
	if diff < 0 {
		diff = -diff
	}
	return types.ExtractionQuality{
		PrimaryLength:         len(primary),
		SecondaryLength:       len(secondary),
		TextDifference:        diff,
		ExtractionConsistency: len(primary) > 0 && len(secondary) > 0,
		HasMeaningfulContent:  len(strings.TrimSpace(primary)) > meaningfulContentChars,
	}
}

// AnalyzeStructure reports line statistics and which resume sections the
// keyword detectors find in the text.
func AnalyzeStructure(text string) types.TextStructure {
	lines := strings.Split(text, "\n")
	var nonEmpty []string
	totalLen := 0
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			nonEmpty = append(nonEmpty, line)
			totalLen += len(line)
		}
	}

	avg := 0.0
	if len(nonEmpty) > 0 {
		avg = float64(totalLen) / float64(len(nonEmpty))
	}

	return types.TextStructure{
		TotalLines:        len(lines),
		NonEmptyLines:     len(nonEmpty),
		AverageLineLength: avg,
		HasContactInfo:    HasContactInfo(text),
		HasWorkExperience: containsAnyKeyword(text, workKeywords),
		HasEducation:      containsAnyKeyword(text, educationKeywords),
		HasSkills:         containsAnyKeyword(text, skillsKeywords),
	}
}

// HasContactInfo reports whether an email or phone substring is present.
func HasContactInfo(text string) bool {
	return parsing.EmailPattern.MatchString(text) || parsing.PhonePattern.MatchString(text)
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AnalyzeReadability computes the ATS-facing readability metrics.
func AnalyzeReadability(text string) types.TextReadability {
	lines := nonBlankLines(text)

	wordsPerLine := 0
	for _, line := range lines {
		wordsPerLine += len(strings.Fields(line))
	}
	avg := float64(wordsPerLine) / float64(max(len(lines), 1))

	return types.TextReadability{
		TotalWords:              len(strings.Fields(text)),
		AverageWordsPerLine:     avg,
		HasConsistentFormatting: hasDateLines(lines),
		SpecialCharacters:       len(specialCharPattern.FindAllString(text, -1)),
		UnicodeIssues:           nonASCIIPattern.MatchString(text),
	}
}

// hasDateLines reports whether any line carries a recognizable date; the
// formatting check is only that dates appear at all.
func hasDateLines(lines []string) bool {
	for _, line := range lines {
		if datePattern.MatchString(line) {
			return true
		}
	}
	return false
}

// AnalyzeKeywordDensity counts occurrences of the fixed resume keyword list.
func AnalyzeKeywordDensity(text string) types.KeywordDensity {
	lower := strings.ToLower(text)
	counts := make(map[string]int, len(resumeKeywords))
	total := 0
	for _, kw := range resumeKeywords {
		n := strings.Count(lower, kw)
		counts[kw] = n
		total += n
	}
	words := len(strings.Fields(text))
	return types.KeywordDensity{
		KeywordCounts:  counts,
		TotalKeywords:  total,
		KeywordDensity: float64(total) / float64(max(words, 1)) * 100,
	}
}

// AnalyzeVisualStructure summarizes section breaks, bullets, and spacing.
func AnalyzeVisualStructure(text string) types.VisualStructure {
	return types.VisualStructure{
		SectionBreaks:     strings.Count(text, "---") + strings.Count(text, "***"),
		BulletPoints:      strings.Count(text, "•") + strings.Count(text, "*"),
		BoldSections:      len(boldSpanPattern.FindAllString(text, -1)),
		ConsistentSpacing: hasConsistentSpacing(text),
	}
}

// hasConsistentSpacing allows at most three distinct indentation levels.
func hasConsistentSpacing(text string) bool {
	indents := map[int]struct{}{}
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++
		indents[len(line)-len(strings.TrimLeft(line, " \t"))] = struct{}{}
	}
	if n < 2 {
		return true
	}
	return len(indents) <= 3
}

// AnalyzeContentOrganization summarizes paragraph grouping and ordering.
func AnalyzeContentOrganization(text string) types.ContentOrganization {
	sections := strings.Split(text, "\n\n")
	lengths := make([]int, len(sections))
	for i, s := range sections {
		lengths[i] = len(s)
	}
	return types.ContentOrganization{
		TotalSections:      len(sections),
		SectionLengths:     lengths,
		HasClearHeadings:   clearHeadingPattern.MatchString(text),
		ChronologicalOrder: isReverseChronological(text),
	}
}

// isReverseChronological checks that four-digit years appear newest-first.
func isReverseChronological(text string) bool {
	matches := yearPattern.FindAllString(text, -1)
	if len(matches) < 2 {
		return true
	}
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	for i := 1; i < len(years); i++ {
		if years[i] > years[i-1] {
			return false
		}
	}
	return true
}

// AnalyzePresentation summarizes professional presentation signals.
func AnalyzePresentation(text string) types.ProfessionalPresentation {
	lower := strings.ToLower(text)
	professional := true
	for _, w := range unprofessionalWords {
		if strings.Contains(lower, w) {
			professional = false
			break
		}
	}
	return types.ProfessionalPresentation{
		HasContactInfo:            HasContactInfo(text),
		HasQuantifiedAchievements: quantifiedPattern.MatchString(text),
		ActionVerbs:               len(actionVerbPattern.FindAllString(lower, -1)),
		ProfessionalTone:          professional,
	}
}

// QuickAnalyze computes the lightweight per-resume metrics used by the diff
// command, including its own score allocation.
func QuickAnalyze(text string) types.QuickAnalysis {
	sections := 0
	lower := strings.ToLower(text)
	for _, s := range []string{"work experience", "education", "skills"} {
		if strings.Contains(lower, s) {
			sections++
		}
	}

	a := types.QuickAnalysis{
		TextLength:        len(text),
		WordCount:         len(strings.Fields(text)),
		SpecialChars:      len(specialCharPattern.FindAllString(text, -1)),
		HasAmpersands:     strings.Contains(text, "&"),
		HasSpecialBullets: strings.ContainsAny(text, "•◦·"),
		HasNonASCII:       nonASCIIPattern.MatchString(text),
		HasEmail:          parsing.EmailPattern.MatchString(text),
		HasPhone:          parsing.PhonePattern.MatchString(text),
		SectionsFound:     sections,
	}
	a.ATSScore = QuickScore(a)
	return a
}
