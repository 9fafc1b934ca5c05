package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractedResume = `John Smith
john@example.com
WORK EXPERIENCE
Senior Engineer: Acme Corp | 2020-2023
• Led a team of 5 engineers
• Shipped the billing platform
Junior Engineer: Initech | 2017-2020
• Maintained legacy services
EDUCATION
BS Computer Science | MIT | 2016
SKILLS
Languages:
Go • Python • SQL
Tools:
Docker • Kubernetes`

func TestParseWorkExperience_Extracted(t *testing.T) {
	experience := ParseWorkExperience(extractedResume, Extracted)

	require.Len(t, experience.Jobs, 2)
	assert.True(t, experience.ParsedWell)
	assert.Empty(t, experience.Issues)

	assert.Equal(t, "Senior Engineer", experience.Jobs[0].Title)
	assert.Equal(t, "Acme Corp", experience.Jobs[0].Company)
	assert.Equal(t, "2020-2023", experience.Jobs[0].Dates)
	assert.Equal(t, []string{"Led a team of 5 engineers", "Shipped the billing platform"},
		experience.Jobs[0].Achievements)

	assert.Equal(t, "Junior Engineer", experience.Jobs[1].Title)
	assert.Equal(t, "Initech", experience.Jobs[1].Company)
}

func TestParseWorkExperience_SectionMissing(t *testing.T) {
	experience := ParseWorkExperience("just some text", Extracted)

	assert.Empty(t, experience.Jobs)
	assert.False(t, experience.ParsedWell)
	assert.Equal(t, []string{"Work experience section not found"}, experience.Issues)
}

func TestParseWorkExperience_JobWithoutCompany(t *testing.T) {
	text := "WORK EXPERIENCE\nFreelance Consulting Work:\nEDUCATION"

	experience := ParseWorkExperience(text, Extracted)

	require.Len(t, experience.Jobs, 1)
	assert.False(t, experience.ParsedWell)
	assert.Contains(t, experience.Issues, "Work experience not parsed correctly")
}

func TestParseEducation_Extracted(t *testing.T) {
	education := ParseEducation(extractedResume, Extracted)

	// The section header line matches the loosest pattern alternative and
	// becomes an entry of its own.
	require.Len(t, education.Institutions, 2)
	assert.True(t, education.ParsedWell)

	assert.Equal(t, "BS Computer Science", education.Institutions[1].Degree)
	assert.Equal(t, "MIT", education.Institutions[1].Institution)
	assert.Equal(t, "2016", education.Institutions[1].Dates)
}

func TestParseEducation_SectionMissing(t *testing.T) {
	education := ParseEducation("just some text", Extracted)

	assert.False(t, education.ParsedWell)
	assert.Equal(t, []string{"Education section not found"}, education.Issues)
}

func TestParseSkills_Extracted(t *testing.T) {
	skills := ParseSkills(extractedResume, Extracted)

	require.Len(t, skills.Categories, 2)
	assert.True(t, skills.ParsedWell)

	assert.Equal(t, "Languages", skills.Categories[0].Name)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, skills.Categories[0].Skills)
	assert.Equal(t, "Tools", skills.Categories[1].Name)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills.Categories[1].Skills)
}

func TestParseSkills_SectionMissing(t *testing.T) {
	skills := ParseSkills("just some text", Extracted)

	assert.False(t, skills.ParsedWell)
	assert.Equal(t, []string{"Skills section not found"}, skills.Issues)
}

func TestParseSkills_CategoriesWithoutSkills(t *testing.T) {
	text := "SKILLS\nLanguages:\nTools:"

	skills := ParseSkills(text, Extracted)

	require.Len(t, skills.Categories, 2)
	assert.False(t, skills.ParsedWell)
	assert.Contains(t, skills.Issues, "Skills not parsed correctly")
}

const atsTextResume = `Jane Doe
Senior Software Engineer

CONTACT INFORMATION:
Email: jane@example.com
Phone: 555-987-6543

WORK EXPERIENCE:

Senior Engineer: Acme Corp | 2020-2023
* Led a team of 5 engineers
* Shipped the billing platform

Junior Engineer: Initech | 2017-2020
* Maintained legacy services

EDUCATION:

BS Computer Science: MIT | 2016

SKILLS:

Languages: Go, Python, SQL
Tools: Docker, Kubernetes`

func TestParseWorkExperience_ATSText(t *testing.T) {
	experience := ParseWorkExperience(atsTextResume, ATSText)

	require.Len(t, experience.Jobs, 2)
	assert.True(t, experience.ParsedWell)

	assert.Equal(t, "Senior Engineer", experience.Jobs[0].Title)
	assert.Equal(t, "Acme Corp", experience.Jobs[0].Company)
	assert.Equal(t, "2020-2023", experience.Jobs[0].Dates)
	assert.Len(t, experience.Jobs[0].Achievements, 2)
	assert.Equal(t, "Maintained legacy services", experience.Jobs[1].Achievements[0])
}

func TestParseEducation_ATSText(t *testing.T) {
	education := ParseEducation(atsTextResume, ATSText)

	// The "EDUCATION:" header has no pipe, so only the entry line matches.
	require.Len(t, education.Institutions, 1)
	assert.True(t, education.ParsedWell)
	assert.Equal(t, "BS Computer Science", education.Institutions[0].Degree)
	assert.Equal(t, "MIT", education.Institutions[0].Institution)
	assert.Equal(t, "2016", education.Institutions[0].Dates)
}

func TestParseSkills_ATSText(t *testing.T) {
	skills := ParseSkills(atsTextResume, ATSText)

	// The "SKILLS:" header opens an empty category ahead of the real ones.
	require.Len(t, skills.Categories, 3)
	assert.True(t, skills.ParsedWell)

	assert.Equal(t, "Languages", skills.Categories[1].Name)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, skills.Categories[1].Skills)
	assert.Equal(t, "Tools", skills.Categories[2].Name)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills.Categories[2].Skills)
}
