package parsing

import (
	"regexp"
	"strings"

	"github.com/harris/atskit/internal/types"
)

// Dialect parameterizes the line-oriented entry parsers over the two resume
// text shapes the toolkit consumes: text extracted from a rendered PDF, and
// the generated plain ATS text (LABEL: value lines, pipe-separated fields).
// The historical scripts each hard-coded one shape; the precedence rules here
// reproduce them exactly.
type Dialect struct {
	Name string

	// openJob parses a line that starts a new job entry. ok is false when
	// the line does not open an entry.
	openJob func(line string) (job types.JobEntry, ok bool)

	// achievement parses a line that continues the current job entry.
	achievement func(line string) (text string, ok bool)

	// openCategory parses a line that starts a new skill category.
	openCategory func(line string) (cat types.SkillCategory, ok bool)

	// categoryItems splits a continuation line into skill items appended to
	// the current category. ok is false when the line carries no items.
	categoryItems func(line string) (items []string, ok bool)

	// educationEntry parses one education line. ok is false on miss.
	educationEntry func(line string) (entry types.EducationEntry, ok bool)
}

var headingColonPattern = regexp.MustCompile(`^[A-Z][^:]+:`)

// skillSeparatorPattern splits a skill line on bullet and pipe separators.
var skillSeparatorPattern = regexp.MustCompile(`[•·|]`)

// Ordered alternatives for extracted-text education lines. The first pattern
// that matches a line is used; later alternatives fill fewer fields.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][^|]+)\s*\|\s*([^|]+)\s*\|\s*([^|]+)`),
	regexp.MustCompile(`([A-Z][^|]+)\s*\|\s*([^|]+)`),
	regexp.MustCompile(`([A-Z][^|]+)`),
}

// Extracted is the dialect for raw text pulled out of a rendered PDF.
var Extracted = Dialect{
	Name: "extracted",

	openJob: func(line string) (types.JobEntry, bool) {
		if !headingColonPattern.MatchString(line) {
			return types.JobEntry{}, false
		}
		var job types.JobEntry
		parts := strings.Split(line, "|")
		if len(parts) >= 2 {
			titleCompany := strings.Split(parts[0], ":")
			job.Title = strings.TrimSpace(titleCompany[0])
			if len(titleCompany) >= 2 {
				job.Company = strings.TrimSpace(titleCompany[1])
			}
			job.Dates = strings.TrimSpace(parts[1])
		} else {
			job.Title = line
		}
		return job, true
	},

	achievement: func(line string) (string, bool) {
		if !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "*") &&
			!strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "·") {
			return "", false
		}
		return strings.TrimSpace(strings.TrimLeft(line, "•*-·")), true
	},

	openCategory: func(line string) (types.SkillCategory, bool) {
		if !headingColonPattern.MatchString(line) {
			return types.SkillCategory{}, false
		}
		return types.SkillCategory{Name: strings.TrimRight(line, ":")}, true
	},

	categoryItems: func(line string) ([]string, bool) {
		if !strings.ContainsAny(line, "•·|") {
			return nil, false
		}
		var items []string
		for _, item := range skillSeparatorPattern.Split(line, -1) {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, true
	},

	educationEntry: func(line string) (types.EducationEntry, bool) {
		for _, p := range educationPatterns {
			m := p.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			var entry types.EducationEntry
			entry.Degree = strings.TrimSpace(m[1])
			if len(m) > 2 {
				entry.Institution = strings.TrimSpace(m[2])
			}
			if len(m) > 3 {
				entry.Dates = strings.TrimSpace(m[3])
			}
			return entry, true
		}
		return types.EducationEntry{}, false
	},
}

// ATSText is the dialect for the generated plain ATS text format
// (Title: Company | Dates entries, * bullets, comma-separated skills).
var ATSText = Dialect{
	Name: "ats-text",

	openJob: func(line string) (types.JobEntry, bool) {
		if !strings.Contains(line, ":") || !strings.Contains(line, "|") ||
			strings.HasPrefix(line, "*") {
			return types.JobEntry{}, false
		}
		parts := strings.Split(line, ":")
		var job types.JobEntry
		job.Title = strings.TrimSpace(parts[0])
		companyDates := strings.TrimSpace(parts[1])
		if before, after, found := strings.Cut(companyDates, "|"); found {
			job.Company = strings.TrimSpace(before)
			job.Dates = strings.TrimSpace(after)
		} else {
			job.Company = companyDates
		}
		return job, true
	},

	achievement: func(line string) (string, bool) {
		if !strings.HasPrefix(line, "*") {
			return "", false
		}
		text := strings.TrimSpace(line[1:])
		return text, text != ""
	},

	openCategory: func(line string) (types.SkillCategory, bool) {
		name, rest, found := strings.Cut(line, ":")
		if !found {
			return types.SkillCategory{}, false
		}
		cat := types.SkillCategory{Name: strings.TrimSpace(name)}
		for _, item := range strings.Split(rest, ",") {
			if item = strings.TrimSpace(item); item != "" {
				cat.Skills = append(cat.Skills, item)
			}
		}
		return cat, true
	},

	// ATS text keeps skills on the category line itself.
	categoryItems: func(string) ([]string, bool) { return nil, false },

	educationEntry: func(line string) (types.EducationEntry, bool) {
		if !strings.Contains(line, ":") || !strings.Contains(line, "|") {
			return types.EducationEntry{}, false
		}
		parts := strings.Split(line, ":")
		var entry types.EducationEntry
		entry.Degree = strings.TrimSpace(parts[0])
		instDates := strings.TrimSpace(parts[1])
		if before, after, found := strings.Cut(instDates, "|"); found {
			entry.Institution = strings.TrimSpace(before)
			entry.Dates = strings.TrimSpace(after)
		} else {
			entry.Institution = instDates
		}
		return entry, true
	},
}
