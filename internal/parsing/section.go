// Package parsing implements the heuristic section and field extraction that
// simulates how an ATS segments a resume. The matching precedence and
// default-on-miss behavior are load-bearing: scores are only comparable with
// historical report output if they are preserved exactly.
package parsing

import "strings"

// ExtractSection returns the contiguous line range starting at the first line
// containing startKeyword (case-insensitive substring match) up to, but not
// including, the first later line containing endKeyword. If endKeyword is
// empty or never found, the section runs to end of text. Returns "" when
// startKeyword is absent.
//
// First match wins unconditionally, so a keyword appearing early (e.g. inside
// an achievement bullet) silently mis-segments. Callers accept that.
func ExtractSection(text, startKeyword, endKeyword string) string {
	lines := strings.Split(text, "\n")
	startIdx := -1
	endIdx := len(lines)

	lowerStart := strings.ToLower(startKeyword)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), lowerStart) {
			startIdx = i
			break
		}
	}

	if startIdx == -1 {
		return ""
	}

	if endKeyword != "" {
		lowerEnd := strings.ToLower(endKeyword)
		for i := startIdx + 1; i < len(lines); i++ {
			if strings.Contains(strings.ToLower(lines[i]), lowerEnd) {
				endIdx = i
				break
			}
		}
	}

	return strings.Join(lines[startIdx:endIdx], "\n")
}
