package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harris/atskit/internal/types"
)

func renderData() *types.ResumeData {
	return &types.ResumeData{
		Name:    "John Smith",
		Tagline: "Senior Software Engineer",
		ContactInfo: map[string]string{
			"email":    "john@example.com",
			"phone":    "555-123-4567",
			"location": "Austin, TX",
		},
		Jobs: []types.JobEntry{
			{
				Title:        "Senior Engineer",
				Company:      "Acme & Sons",
				Dates:        "2020-2023",
				Achievements: []string{"Grew revenue 40%"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "BS Computer Science", Institution: "MIT", Location: "Cambridge, MA", Dates: "2016"},
		},
		Skills: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Go", "C#"}},
		},
	}
}

func TestBuildTemplateData(t *testing.T) {
	data := BuildTemplateData(renderData())

	assert.Equal(t, "John Smith", data.Name)
	assert.Equal(t, "john@example.com - 555-123-4567 - Austin, TX", data.ContactLine)
	require.Len(t, data.Skills, 1)
	assert.Equal(t, "Languages", data.Skills[0].Name)
	assert.Equal(t, "Go, C#", data.Skills[0].SkillList)
}

func TestBuildTemplateData_SkipsEmptyContactFields(t *testing.T) {
	input := renderData()
	input.ContactInfo = map[string]string{"email": "john@example.com"}

	data := BuildTemplateData(input)

	assert.Equal(t, "john@example.com", data.ContactLine)
}

func TestRenderLaTeX_EmbeddedTemplate(t *testing.T) {
	doc, err := RenderLaTeX(renderData(), "")
	require.NoError(t, err)

	assert.Contains(t, doc, `\documentclass`)
	assert.Contains(t, doc, `\begin{document}`)
	assert.Contains(t, doc, `\end{document}`)
	assert.Contains(t, doc, "John Smith")
	assert.Contains(t, doc, `Acme \& Sons`)
	assert.Contains(t, doc, `Grew revenue 40\%`)
	assert.Contains(t, doc, `Go, C\#`)
}

func TestRenderLaTeX_TemplateOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tex.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("NAME={{ escape .Name }}"), 0644))

	doc, err := RenderLaTeX(renderData(), path)
	require.NoError(t, err)

	assert.Equal(t, "NAME=John Smith", doc)
}

func TestRenderLaTeX_MissingOverride(t *testing.T) {
	_, err := RenderLaTeX(renderData(), "/nonexistent/custom.tex.tmpl")

	require.Error(t, err)
	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRenderHTML_Escapes(t *testing.T) {
	input := renderData()
	input.Jobs[0].Achievements = []string{"Built <b>fast</b> pipelines"}

	doc, err := RenderHTML(input)
	require.NoError(t, err)

	assert.Contains(t, doc, "<h1>John Smith</h1>")
	assert.Contains(t, doc, "Built &lt;b&gt;fast&lt;/b&gt; pipelines")
	assert.NotContains(t, doc, "<b>fast</b>")
}
