package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/harris/atskit/internal/types"
)

//go:embed templates/resume.tex.tmpl templates/resume.html.tmpl
var templateFS embed.FS

// TemplateData is the shape passed to the resume templates.
type TemplateData struct {
	Name        string
	Tagline     string
	ContactLine string
	Jobs        []types.JobEntry
	Education   []types.EducationEntry
	Skills      []SkillLine
}

// SkillLine flattens a skill category for template consumption.
type SkillLine struct {
	Name      string
	SkillList string
}

// contactOrder mirrors the generated ATS text so the rendered header and the
// plain-text export list the same fields in the same order.
var contactOrder = []string{"email", "phone", "location", "linkedin"}

// BuildTemplateData flattens parsed resume data for the templates.
func BuildTemplateData(data *types.ResumeData) *TemplateData {
	var contactParts []string
	for _, key := range contactOrder {
		if value := data.ContactInfo[key]; value != "" {
			contactParts = append(contactParts, value)
		}
	}

	skills := make([]SkillLine, 0, len(data.Skills))
	for _, cat := range data.Skills {
		skills = append(skills, SkillLine{
			Name:      cat.Name,
			SkillList: strings.Join(cat.Skills, ", "),
		})
	}

	return &TemplateData{
		Name:        data.Name,
		Tagline:     data.Tagline,
		ContactLine: strings.Join(contactParts, " - "),
		Jobs:        data.Jobs,
		Education:   data.Education,
		Skills:      skills,
	}
}

// RenderLaTeX renders parsed resume data to a LaTeX document. templatePath
// overrides the embedded default template when non-empty.
func RenderLaTeX(data *types.ResumeData, templatePath string) (string, error) {
	tmpl, err := loadTemplate("resume.tex.tmpl", templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, BuildTemplateData(data)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

// loadTemplate parses either the named embedded template or an override file.
func loadTemplate(embedded, overridePath string) (*template.Template, error) {
	funcs := template.FuncMap{"escape": EscapeLaTeX}

	var content []byte
	var err error
	if overridePath != "" {
		content, err = os.ReadFile(overridePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", overridePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", overridePath),
				Cause:   err,
			}
		}
	} else {
		content, err = templateFS.ReadFile("templates/" + embedded)
		if err != nil {
			return nil, &TemplateError{Message: "failed to read embedded template", Cause: err}
		}
	}

	tmpl, err := template.New("resume").Funcs(funcs).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}
