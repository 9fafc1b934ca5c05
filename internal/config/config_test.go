package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"engine": "latex",
		"output_dir": "` + dir + `",
		"max_pages": 1,
		"verbose": true
	}`

	tmpFile := filepath.Join(dir, "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "latex", cfg.Engine)
	assert.Equal(t, dir, cfg.OutputDir)
	assert.Equal(t, 1, cfg.MaxPages)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadEngine(t *testing.T) {
	cfg := &Config{Engine: "pdflatex"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"engine"`)
	assert.Contains(t, err.Error(), "oneof")
}

func TestValidate_OutOfRangeScore(t *testing.T) {
	cfg := &Config{ScoreWarnAt: 150}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"score_warn_at"`)
}

func TestValidate_MissingTemplate(t *testing.T) {
	cfg := &Config{Template: "/nonexistent/resume.tex.tmpl"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"template"`)
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Engine: "chrome"}
	defaults := Config{
		Engine:        "latex",
		Template:      "templates/resume.tex.tmpl",
		MaxPages:      2,
		MaxLineBreaks: 100,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Set fields win; unset fields fall back
	assert.Equal(t, "chrome", merged.Engine)
	assert.Equal(t, "templates/resume.tex.tmpl", merged.Template)
	assert.Equal(t, 2, merged.MaxPages)
	assert.Equal(t, 100, merged.MaxLineBreaks)
}

func TestMergeWithDefaults_TwoPassesUnsetFallsBack(t *testing.T) {
	twoPasses := true
	var cfg Config

	merged := cfg.MergeWithDefaults(Config{TwoPasses: &twoPasses})

	require.NotNil(t, merged.TwoPasses)
	assert.True(t, *merged.TwoPasses)
}

func TestMergeWithDefaults_TwoPassesExplicitFalseSurvives(t *testing.T) {
	singlePass := false
	twoPasses := true
	cfg := Config{TwoPasses: &singlePass}

	merged := cfg.MergeWithDefaults(Config{TwoPasses: &twoPasses})

	require.NotNil(t, merged.TwoPasses)
	assert.False(t, *merged.TwoPasses)
}

func TestLoadConfig_TwoPassesTriState(t *testing.T) {
	dir := t.TempDir()

	withField := filepath.Join(dir, "single_pass.json")
	require.NoError(t, os.WriteFile(withField, []byte(`{"two_passes": false}`), 0644))
	cfg, err := LoadConfig(withField)
	require.NoError(t, err)
	require.NotNil(t, cfg.TwoPasses)
	assert.False(t, *cfg.TwoPasses)

	withoutField := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(withoutField, []byte(`{}`), 0644))
	cfg, err = LoadConfig(withoutField)
	require.NoError(t, err)
	assert.Nil(t, cfg.TwoPasses)
}
