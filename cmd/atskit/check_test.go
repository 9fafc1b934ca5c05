package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeATSFixture writes a minimal ATS text file: clean contact block, no
// parsed sections, no formatting issues. It scores exactly the issue-free
// component of the advanced weights.
func writeATSFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume_ats.txt")
	content := "John Smith\njohn@example.com\n555-123-4567\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCheck_MinScoreFailsLowScore(t *testing.T) {
	path := writeATSFixture(t)

	checkMinScore = 95
	defer func() { checkMinScore = 0 }()

	err := runCheck(checkCmd, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the required minimum 95")
}

func TestRunCheck_MinScoreSatisfied(t *testing.T) {
	path := writeATSFixture(t)

	checkMinScore = 5
	defer func() { checkMinScore = 0 }()

	assert.NoError(t, runCheck(checkCmd, []string{path}))
}

func TestRunCheck_ConfigScoreWarnAt(t *testing.T) {
	path := writeATSFixture(t)

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"score_warn_at": 95}`), 0644))
	checkConfigPath = cfgPath
	defer func() { checkConfigPath = "" }()

	err := runCheck(checkCmd, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the required minimum 95")
}
