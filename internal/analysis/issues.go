// Package analysis implements the ATS issue checklist, the historical score
// weight sets, and the readability metrics used by the audit command.
package analysis

import (
	"regexp"
	"strings"

	"github.com/harris/atskit/internal/parsing"
)

// Fixed issue strings. These appear verbatim in saved JSON reports, so they
// must stay byte-for-byte stable across releases.
const (
	IssueAmpersands     = "Ampersands (&) should be written as 'and' for better ATS compatibility"
	IssueSpecialBullets = "Special bullet points may not parse well in some ATS systems"
	IssueNonASCII       = "Non-ASCII characters may cause ATS parsing issues"
	IssueLineBreaks     = "Too many line breaks may confuse ATS parsing"
	IssueMissingEmail   = "Email address not found - critical for ATS"
	IssueMissingPhone   = "Phone number not found - important for ATS"
	IssueLineLengths    = "Inconsistent line lengths may confuse ATS parsing"
)

// maxLineBreaks is the newline count above which the layout is assumed to
// confuse ATS text reconstruction.
const maxLineBreaks = 100

var nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]`)

// IssueOptions selects the optional checks. The historical variants disagree
// on which checks run; the disagreement is preserved rather than unified so
// scores stay comparable with prior JSON output.
type IssueOptions struct {
	// CheckLineBreaks enables the >100 newlines check (PDF-derived text only;
	// generated ATS text skips it).
	CheckLineBreaks bool
	// CheckLineLengths enables the distinct-line-length variance check, which
	// only one historical variant ran.
	CheckLineLengths bool
	// MaxLineBreaks overrides the newline threshold for the line break check.
	// Zero means the default of 100.
	MaxLineBreaks int
}

// DetectIssues scans the full text against the fixed ATS checklist. The
// returned order is the declaration order above, deterministically.
func DetectIssues(text string, opts IssueOptions) []string {
	issues := []string{}

	if strings.Contains(text, "&") {
		issues = append(issues, IssueAmpersands)
	}
	if strings.Contains(text, "•") || strings.Contains(text, "◦") {
		issues = append(issues, IssueSpecialBullets)
	}
	if nonASCIIPattern.MatchString(text) {
		issues = append(issues, IssueNonASCII)
	}
	lineBreakLimit := opts.MaxLineBreaks
	if lineBreakLimit == 0 {
		lineBreakLimit = maxLineBreaks
	}
	if opts.CheckLineBreaks && strings.Count(text, "\n") > lineBreakLimit {
		issues = append(issues, IssueLineBreaks)
	}
	if !parsing.EmailPattern.MatchString(text) {
		issues = append(issues, IssueMissingEmail)
	}
	if !parsing.PhonePattern.MatchString(text) {
		issues = append(issues, IssueMissingPhone)
	}
	if opts.CheckLineLengths && distinctLineLengths(text) > 10 {
		issues = append(issues, IssueLineLengths)
	}

	return issues
}

// IssueAuditBullets is the audit variant's wording for the bullet check. The
// audit checklist drifted from the full-parse one (order and wording); both
// are kept so each command's output matches its historical JSON.
const (
	IssueAuditBullets    = "Bullet points may not parse well in some ATS systems"
	IssueAuditAmpersands = "Ampersands should be written as 'and' for better ATS compatibility"
)

// DetectFormattingIssues is the audit command's four-check scan: bullets
// first, then ampersands, non-ASCII, and line breaks.
func DetectFormattingIssues(text string) []string {
	issues := []string{}

	if strings.Contains(text, "•") || strings.Contains(text, "◦") {
		issues = append(issues, IssueAuditBullets)
	}
	if strings.Contains(text, "&") {
		issues = append(issues, IssueAuditAmpersands)
	}
	if nonASCIIPattern.MatchString(text) {
		issues = append(issues, IssueNonASCII)
	}
	if strings.Count(text, "\n") > maxLineBreaks {
		issues = append(issues, IssueLineBreaks)
	}

	return issues
}

func distinctLineLengths(text string) int {
	lengths := map[int]struct{}{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lengths[len(line)] = struct{}{}
	}
	return len(lengths)
}
