package rendering

import (
	"html/template"
	"strings"

	"github.com/harris/atskit/internal/types"
)

// RenderHTML renders parsed resume data to a standalone HTML document, the
// input for the headless-Chrome PDF engine. html/template handles escaping.
func RenderHTML(data *types.ResumeData) (string, error) {
	content, err := templateFS.ReadFile("templates/resume.html.tmpl")
	if err != nil {
		return "", &TemplateError{Message: "failed to read embedded template", Cause: err}
	}

	tmpl, err := template.New("resume").Parse(string(content))
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, BuildTemplateData(data)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}
