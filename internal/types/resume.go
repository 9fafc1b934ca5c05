// Package types provides type definitions for structured data used throughout the ATS toolkit.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo represents contact details as an ATS would extract them
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Complete bool   `json:"complete"`
}

// JobEntry represents a single parsed work-experience entry.
// All fields are free-text; dates are never parsed into structured values.
type JobEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Dates        string   `json:"dates"`
	Achievements []string `json:"achievements"`
}

// WorkExperience aggregates parsed job entries with parse quality flags
type WorkExperience struct {
	Jobs       []JobEntry `json:"jobs"`
	ParsedWell bool       `json:"parsed_well"`
	Issues     []string   `json:"issues"`
}

// EducationEntry represents a single parsed education entry.
// Location is only populated by the Markdown dialect.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Dates       string `json:"dates"`
}

// Education aggregates parsed education entries with parse quality flags
type Education struct {
	Institutions []EducationEntry `json:"institutions"`
	ParsedWell   bool             `json:"parsed_well"`
	Issues       []string         `json:"issues"`
}

// SkillCategory represents a named group of skills
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Skills aggregates parsed skill categories with parse quality flags
type Skills struct {
	Categories []SkillCategory `json:"skill_categories"`
	ParsedWell bool            `json:"parsed_well"`
	Issues     []string        `json:"issues"`
}

// ResumeData is the source model parsed from a Markdown resume
// (frontmatter plus Definition List sections).
type ResumeData struct {
	Name        string            `json:"name"`
	Tagline     string            `json:"tagline"`
	ContactInfo map[string]string `json:"contact_info"`
	Jobs        []JobEntry        `json:"work_experience"`
	Education   []EducationEntry  `json:"education"`
	Skills      []SkillCategory   `json:"skills"`
}
