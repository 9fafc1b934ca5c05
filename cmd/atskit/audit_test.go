package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harris/atskit/internal/config"
)

func resetAuditFlags() {
	auditOutput = ""
	auditVerbose = false
	auditSaveText = false
}

func TestApplyAuditConfig_DefaultsFromFile(t *testing.T) {
	defer resetAuditFlags()

	cfg := &config.Config{SaveText: true, Verbose: true, ReportDir: "reports"}
	applyAuditConfig(auditCmd, cfg, "cv/resume.pdf")

	assert.True(t, auditSaveText)
	assert.True(t, auditVerbose)
	assert.Equal(t, filepath.Join("reports", "resume_audit.json"), auditOutput)
}

func TestApplyAuditConfig_ExplicitOutputWins(t *testing.T) {
	defer resetAuditFlags()

	auditOutput = "custom.json"
	cfg := &config.Config{ReportDir: "reports"}
	applyAuditConfig(auditCmd, cfg, "resume.pdf")

	assert.Equal(t, "custom.json", auditOutput)
}
