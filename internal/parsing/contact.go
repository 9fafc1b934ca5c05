package parsing

import (
	"regexp"
	"strings"

	"github.com/harris/atskit/internal/types"
)

// Regexes shared with the issue detector. EmailPattern and PhonePattern are
// exported because analysis uses the same expressions for its missing-field
// checks; the two must never drift apart.
var (
	EmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	PhonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`),
		regexp.MustCompile(`(?m)Name:\s*([A-Z][a-z]+ [A-Z][a-z]+)`),
		regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+)`),
	}

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		regexp.MustCompile(`(\+?1[-.\s]?)?([0-9]{3})[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})`),
		regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z][a-z]+)`),
		regexp.MustCompile(`Location:\s*([A-Z][a-z]+,\s*[A-Z]{2})`),
	}

	linkedinPattern      = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)
	linkedinLabelPattern = regexp.MustCompile(`LinkedIn:\s*([a-zA-Z0-9-]+)`)
)

// ParseContact extracts contact fields from the full resume text. Each field
// tries an ordered list of patterns; the first that matches wins and the rest
// are skipped. Fields default to empty strings on miss.
func ParseContact(text string) types.ContactInfo {
	var contact types.ContactInfo

	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			contact.Name = m[1]
			break
		}
	}

	if m := EmailPattern.FindString(text); m != "" {
		contact.Email = m
	}

	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			contact.Phone = m
			break
		}
	}

	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			contact.Location = m[1]
			break
		}
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		contact.LinkedIn = m[1]
	}

	contact.Complete = contact.Name != "" && contact.Email != "" &&
		contact.Phone != "" && contact.Location != ""

	return contact
}

// ParseContactFromATSText extracts contact fields from generated ATS text,
// where the name is simply the first line and LinkedIn uses a label prefix.
func ParseContactFromATSText(text string) types.ContactInfo {
	var contact types.ContactInfo

	if lines := strings.Split(text, "\n"); len(lines) > 0 {
		contact.Name = strings.TrimSpace(lines[0])
	}

	if m := EmailPattern.FindString(text); m != "" {
		contact.Email = m
	}
	if m := PhonePattern.FindString(text); m != "" {
		contact.Phone = m
	}
	if m := locationPatterns[0].FindStringSubmatch(text); m != nil {
		contact.Location = m[1]
	}
	if m := linkedinLabelPattern.FindStringSubmatch(text); m != nil {
		contact.LinkedIn = m[1]
	}

	contact.Complete = contact.Name != "" && contact.Email != "" &&
		contact.Phone != "" && contact.Location != ""

	return contact
}
