// Package markdown parses the resume Markdown source: YAML frontmatter for
// contact details and the Definition List convention for sections
// (**Bold Title** / ": Continuation" / "*   bullet" / ***Sub-heading***).
package markdown

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harris/atskit/internal/parsing"
	"github.com/harris/atskit/internal/types"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

// Parse extracts structured resume data from Markdown content.
func Parse(content string) (*types.ResumeData, error) {
	data := &types.ResumeData{ContactInfo: map[string]string{}}

	if err := parseFrontmatter(content, data); err != nil {
		return nil, err
	}
	data.Jobs = parseWorkExperience(content)
	data.Education = parseEducation(content)
	data.Skills = parseSkills(content)

	return data, nil
}

// parseFrontmatter reads the --- fenced key/value block. name and subtitle
// are promoted to top-level fields; everything else lands in the contact map.
func parseFrontmatter(content string, data *types.ResumeData) error {
	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var fields map[string]string
	if err := yaml.Unmarshal([]byte(m[1]), &fields); err != nil {
		return &ParseError{Message: "invalid frontmatter", Cause: err}
	}

	for key, value := range fields {
		switch key {
		case "name":
			data.Name = strings.TrimSpace(value)
		case "subtitle":
			data.Tagline = strings.TrimSpace(value)
		default:
			data.ContactInfo[key] = strings.TrimSpace(value)
		}
	}
	return nil
}

// isBold reports whether the line is a **Title** marker but not a
// ***Sub-heading*** one.
func isBold(line string) bool {
	return strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") &&
		!strings.HasPrefix(line, "***")
}

func isSubHeading(line string) bool {
	return strings.HasPrefix(line, "***") && strings.HasSuffix(line, "***")
}

func parseWorkExperience(content string) []types.JobEntry {
	section := parsing.ExtractSection(content, "Work Experience", "Education")
	if section == "" {
		return nil
	}

	var jobs []types.JobEntry
	var current *types.JobEntry

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "---") {
			continue
		}

		switch {
		case isBold(line):
			if current != nil {
				jobs = append(jobs, *current)
			}
			current = &types.JobEntry{Title: strings.Trim(line, "*")}

		case strings.HasPrefix(line, ": "):
			if current == nil {
				continue
			}
			companyDates := line[2:]
			if before, after, found := strings.Cut(companyDates, " | "); found {
				current.Company = strings.TrimSpace(before)
				current.Dates = strings.TrimSpace(strings.ReplaceAll(after, "_", ""))
			} else {
				current.Company = strings.TrimSpace(companyDates)
			}

		case isSubHeading(line):
			if current != nil {
				current.Achievements = append(current.Achievements,
					"Project: "+strings.Trim(line, "*"))
			}

		case strings.HasPrefix(line, "*   "):
			if current != nil {
				current.Achievements = append(current.Achievements,
					strings.TrimSpace(line[4:]))
			}
		}
	}
	if current != nil {
		jobs = append(jobs, *current)
	}

	return jobs
}

// parseEducation reads "**Institution** | Location | _Dates_" lines with the
// degree on a following "*   " bullet. An entry without a degree bullet is
// dropped, matching the Definition List convention.
func parseEducation(content string) []types.EducationEntry {
	section := parsing.ExtractSection(content, "Education", "Skills")
	if section == "" {
		return nil
	}

	var entries []types.EducationEntry
	var current *types.EducationEntry

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, " | ") && !strings.HasPrefix(line, "*") {
			parts := strings.Split(line, " | ")
			if len(parts) >= 3 {
				current = &types.EducationEntry{
					Institution: strings.TrimSpace(strings.ReplaceAll(parts[0], "**", "")),
					Location:    strings.TrimSpace(parts[1]),
					Dates:       strings.TrimSpace(strings.ReplaceAll(parts[2], "_", "")),
				}
			}
			continue
		}

		if strings.HasPrefix(line, "*   ") && current != nil {
			current.Degree = strings.TrimSpace(line[4:])
			entries = append(entries, *current)
			current = nil
		}
	}

	return entries
}

func parseSkills(content string) []types.SkillCategory {
	section := parsing.ExtractSection(content, "Skills", "")
	if section == "" {
		return nil
	}

	var categories []types.SkillCategory
	var current *types.SkillCategory

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case isBold(line):
			if current != nil {
				categories = append(categories, *current)
			}
			current = &types.SkillCategory{Name: strings.Trim(line, "*")}

		case current != nil && strings.Contains(line, "•"):
			for _, item := range strings.Split(line, "•") {
				if item = strings.TrimSpace(item); item != "" {
					current.Skills = append(current.Skills, item)
				}
			}
		}
	}
	if current != nil {
		categories = append(categories, *current)
	}

	return categories
}
