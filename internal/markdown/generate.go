package markdown

import (
	"fmt"
	"strings"

	"github.com/harris/atskit/internal/types"
)

// contactOrder fixes the emission order of the contact line; map iteration
// order would otherwise make output non-deterministic between runs.
var contactOrder = []string{"email", "phone", "location", "linkedin"}

// GenerateATSText renders parsed resume data as labeled plain text
// (NAME: / JOB TITLE: / DEGREE: blocks), the verbose diagnostic format.
func GenerateATSText(data *types.ResumeData) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("NAME: %s", data.Name),
		fmt.Sprintf("TITLE: %s", data.Tagline),
		"",
		"CONTACT INFORMATION:")
	for _, key := range contactOrder {
		if value := data.ContactInfo[key]; value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(key), value))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "WORK EXPERIENCE:")
	for _, job := range data.Jobs {
		lines = append(lines,
			fmt.Sprintf("JOB TITLE: %s", job.Title),
			fmt.Sprintf("COMPANY: %s", job.Company),
			fmt.Sprintf("DATES: %s", job.Dates))
		if len(job.Achievements) > 0 {
			lines = append(lines, "ACHIEVEMENTS:")
			for _, a := range job.Achievements {
				lines = append(lines, fmt.Sprintf("- %s", a))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, "EDUCATION:")
	for _, edu := range data.Education {
		lines = append(lines,
			fmt.Sprintf("DEGREE: %s", edu.Degree),
			fmt.Sprintf("INSTITUTION: %s", edu.Institution),
			fmt.Sprintf("LOCATION: %s", edu.Location),
			fmt.Sprintf("DATES: %s", edu.Dates),
			"")
	}

	lines = append(lines, "SKILLS:")
	for _, cat := range data.Skills {
		lines = append(lines, fmt.Sprintf("%s: %s",
			strings.ToUpper(cat.Name), strings.Join(cat.Skills, ", ")))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// GenerateOptimizedText renders parsed resume data in the compact
// ATS-friendly format ("Title: Company | Dates" entries, * bullets,
// "Category: a, b, c" skills). Ampersands are replaced in the final text so
// the output passes its own issue scan.
func GenerateOptimizedText(data *types.ResumeData) string {
	var lines []string

	lines = append(lines, data.Name, data.Tagline, "")

	var contactParts []string
	for _, key := range contactOrder {
		value := data.ContactInfo[key]
		if value == "" {
			continue
		}
		if key == "linkedin" {
			value = "LinkedIn: " + value
		}
		contactParts = append(contactParts, value)
	}
	lines = append(lines, strings.Join(contactParts, " | "), "")

	lines = append(lines, "WORK EXPERIENCE")
	for _, job := range data.Jobs {
		lines = append(lines, fmt.Sprintf("%s: %s | %s", job.Title, job.Company, job.Dates))
		for _, a := range job.Achievements {
			lines = append(lines, fmt.Sprintf("* %s", a))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "EDUCATION")
	for _, edu := range data.Education {
		lines = append(lines, fmt.Sprintf("%s: %s | %s", edu.Degree, edu.Institution, edu.Dates))
	}
	lines = append(lines, "")

	lines = append(lines, "SKILLS")
	for _, cat := range data.Skills {
		lines = append(lines, fmt.Sprintf("%s: %s", cat.Name, strings.Join(cat.Skills, ", ")))
	}

	return strings.ReplaceAll(strings.Join(lines, "\n"), "&", "and")
}
