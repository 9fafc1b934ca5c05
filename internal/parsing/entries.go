package parsing

import (
	"strings"

	"github.com/harris/atskit/internal/types"
)

// Section keywords recognized by ParseResume. Matching is case-insensitive,
// so the extracted and generated text shapes share one set.
const (
	workKeyword      = "work experience"
	educationKeyword = "education"
	skillsKeyword    = "skills"
)

// ParseWorkExperience runs the two-state line machine over the work section:
// a line the dialect recognizes as an entry opener flushes the current job and
// starts a new one; a recognized continuation appends an achievement; end of
// section flushes the last open job. A job parses well only when both title
// and company are non-empty.
func ParseWorkExperience(text string, d Dialect) types.WorkExperience {
	experience := types.WorkExperience{}

	section := ExtractSection(text, workKeyword, educationKeyword)
	if section == "" {
		experience.Issues = append(experience.Issues, "Work experience section not found")
		return experience
	}

	var current *types.JobEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if job, ok := d.openJob(line); ok {
			if current != nil {
				experience.Jobs = append(experience.Jobs, *current)
			}
			current = &job
			continue
		}

		if current != nil {
			if achievement, ok := d.achievement(line); ok && achievement != "" {
				current.Achievements = append(current.Achievements, achievement)
			}
		}
	}
	if current != nil {
		experience.Jobs = append(experience.Jobs, *current)
	}

	experience.ParsedWell = len(experience.Jobs) > 0
	for _, job := range experience.Jobs {
		if job.Title == "" || job.Company == "" {
			experience.ParsedWell = false
			break
		}
	}
	if !experience.ParsedWell {
		experience.Issues = append(experience.Issues, "Work experience not parsed correctly")
	}

	return experience
}

// ParseEducation applies the dialect's per-line education matcher to every
// non-blank line of the education section. Lines that miss every alternative
// are skipped, never errors.
func ParseEducation(text string, d Dialect) types.Education {
	education := types.Education{}

	section := ExtractSection(text, educationKeyword, skillsKeyword)
	if section == "" {
		education.Issues = append(education.Issues, "Education section not found")
		return education
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if entry, ok := d.educationEntry(line); ok {
			education.Institutions = append(education.Institutions, entry)
		}
	}

	education.ParsedWell = len(education.Institutions) > 0
	if !education.ParsedWell {
		education.Issues = append(education.Issues, "Education not parsed correctly")
	}

	return education
}

// ParseSkills runs the category state machine over the skills section.
// Categories parse well only when at least one category holds a skill.
func ParseSkills(text string, d Dialect) types.Skills {
	skills := types.Skills{}

	section := ExtractSection(text, skillsKeyword, "")
	if section == "" {
		skills.Issues = append(skills.Issues, "Skills section not found")
		return skills
	}

	var current *types.SkillCategory
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if cat, ok := d.openCategory(line); ok {
			if current != nil {
				skills.Categories = append(skills.Categories, *current)
			}
			current = &cat
			continue
		}

		if current != nil {
			if items, ok := d.categoryItems(line); ok {
				current.Skills = append(current.Skills, items...)
			}
		}
	}
	if current != nil {
		skills.Categories = append(skills.Categories, *current)
	}

	anySkills := false
	for _, cat := range skills.Categories {
		if len(cat.Skills) > 0 {
			anySkills = true
			break
		}
	}
	skills.ParsedWell = len(skills.Categories) > 0 && anySkills
	if !skills.ParsedWell {
		skills.Issues = append(skills.Issues, "Skills not parsed correctly")
	}

	return skills
}
