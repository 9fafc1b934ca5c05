// Package optimize applies the ATS character substitutions: ampersands become
// "and", decorative bullets become '*', typographic punctuation becomes its
// ASCII equivalent, and anything still outside the 0-127 range becomes a
// space. Every transform is idempotent: running an optimizer on its own
// output returns the input unchanged.
package optimize

import (
	"regexp"
	"strings"
)

// characterReplacer handles the fixed substitution table. Ordered pairs, so
// multi-byte glyphs are rewritten before the catch-all ASCII pass sees them.
var characterReplacer = strings.NewReplacer(
	"&", "and",
	"•", "*",
	"◦", "*",
	"·", "*",
	"–", "-",
	"—", "-",
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

var (
	horizontalSpacePattern = regexp.MustCompile(`[ \t]+`)
	blankLinePattern       = regexp.MustCompile(`\n[ \t]*\n[\n \t]*`)
	wsRunPattern           = regexp.MustCompile(`\s+`)
)

// Characters applies only the substitution table.
func Characters(text string) string {
	return characterReplacer.Replace(text)
}

// stripNonASCII replaces every byte outside the 0-127 range with a space.
func stripNonASCII(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// Text produces the flattened optimized text embedded in analysis reports:
// substitutions, ASCII stripping, then full whitespace collapse into a
// single line. Line structure does not survive; the field exists for
// keyword-level ATS matching, not for re-rendering.
func Text(text string) string {
	text = Characters(text)
	text = stripNonASCII(text)
	return wsRunPattern.ReplaceAllString(text, " ")
}

// Markdown optimizes a Markdown resume in place, preserving line structure:
// substitutions, ASCII stripping, horizontal whitespace collapsed, blank-line
// runs reduced to one.
func Markdown(text string) string {
	text = Characters(text)
	text = stripNonASCII(text)
	text = horizontalSpacePattern.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text = strings.Join(lines, "\n")
	return blankLinePattern.ReplaceAllString(text, "\n\n")
}

// LaTeX optimizes a LaTeX source file: the escaped ampersand goes first so it
// does not decay into a stray backslash, then the substitution table. Layout
// and non-ASCII math are left alone; xelatex owns typesetting.
func LaTeX(text string) string {
	text = strings.ReplaceAll(text, `\&`, "and")
	return Characters(text)
}
