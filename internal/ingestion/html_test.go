package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractHTML_BlocksBecomeLines(t *testing.T) {
	path := writeHTML(t, `<html><body>
		<h1>John Smith</h1>
		<p>john@example.com</p>
		<h2>Work Experience</h2>
		<ul><li>Led a team</li><li>Shipped features</li></ul>
	</body></html>`)

	text, err := ExtractHTML(path)
	require.NoError(t, err)

	assert.Contains(t, text, "John Smith\n")
	assert.Contains(t, text, "john@example.com\n")
	assert.Contains(t, text, "Work Experience\n")
	assert.Contains(t, text, "Led a team\n")
	assert.Contains(t, text, "Shipped features\n")
}

func TestExtractHTML_SkipsScriptAndStyle(t *testing.T) {
	path := writeHTML(t, `<html><head><style>p { color: red }</style></head><body>
		<script>var tracking = true;</script>
		<p>visible content</p>
	</body></html>`)

	text, err := ExtractHTML(path)
	require.NoError(t, err)

	assert.Contains(t, text, "visible content")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
}

func TestExtractHTML_NestedContainersNotDuplicated(t *testing.T) {
	path := writeHTML(t, `<html><body><div><div><p>once only</p></div></div></body></html>`)

	text, err := ExtractHTML(path)
	require.NoError(t, err)

	assert.Equal(t, "once only\n", text)
}

func TestExtractHTML_BodyFallback(t *testing.T) {
	path := writeHTML(t, `<html><body>bare text with no blocks</body></html>`)

	text, err := ExtractHTML(path)
	require.NoError(t, err)

	assert.Equal(t, "bare text with no blocks", text)
}

func TestExtractHTML_NotFound(t *testing.T) {
	_, err := ExtractHTML("/nonexistent/resume.html")

	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}
