package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContact_AllFields(t *testing.T) {
	text := "John Smith\njohn@example.com\n555-123-4567\nAustin, TX\nlinkedin.com/in/johnsmith"

	contact := ParseContact(text)

	assert.Equal(t, "John Smith", contact.Name)
	assert.Equal(t, "john@example.com", contact.Email)
	assert.Equal(t, "555-123-4567", contact.Phone)
	assert.Equal(t, "Austin, TX", contact.Location)
	assert.Equal(t, "johnsmith", contact.LinkedIn)
	assert.True(t, contact.Complete)
}

func TestParseContact_NoEmail(t *testing.T) {
	text := "John Smith\n555-123-4567\nAustin, TX"

	contact := ParseContact(text)

	assert.Empty(t, contact.Email)
	assert.False(t, contact.Complete)
}

func TestParseContact_EmptyText(t *testing.T) {
	contact := ParseContact("")

	assert.Empty(t, contact.Name)
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.Location)
	assert.Empty(t, contact.LinkedIn)
	assert.False(t, contact.Complete)
}

func TestParseContact_NameRequiresLineStart(t *testing.T) {
	text := "resume of Jane Doe\njane@example.com"

	contact := ParseContact(text)

	// Mid-line names only match through the Name: label pattern.
	assert.Empty(t, contact.Name)
}

func TestParseContact_NameLabel(t *testing.T) {
	text := "resume\nName: Jane Doe\njane@example.com"

	contact := ParseContact(text)

	assert.Equal(t, "Jane Doe", contact.Name)
}

func TestParseContact_ParenthesizedPhone(t *testing.T) {
	text := "John Smith\n(512) 555-1234"

	contact := ParseContact(text)

	assert.Equal(t, "(512) 555-1234", contact.Phone)
}

func TestParseContact_LinkedInCaseInsensitive(t *testing.T) {
	text := "John Smith\nLinkedIn.com/in/john-smith-42"

	contact := ParseContact(text)

	assert.Equal(t, "john-smith-42", contact.LinkedIn)
}

func TestParseContactFromATSText_NameIsFirstLine(t *testing.T) {
	text := "Jane Q Doe\nSenior Engineer\n\nCONTACT INFORMATION:\nEmail: jane@example.com\nPhone: 555-987-6543\nLocation: Denver, CO\nLinkedIn: janedoe"

	contact := ParseContactFromATSText(text)

	assert.Equal(t, "Jane Q Doe", contact.Name)
	assert.Equal(t, "jane@example.com", contact.Email)
	assert.Equal(t, "555-987-6543", contact.Phone)
	assert.Equal(t, "Denver, CO", contact.Location)
	assert.Equal(t, "janedoe", contact.LinkedIn)
	assert.True(t, contact.Complete)
}

func TestParseContactFromATSText_LinkedInRequiresLabel(t *testing.T) {
	text := "Jane Doe\nlinkedin.com/in/janedoe"

	contact := ParseContactFromATSText(text)

	assert.Empty(t, contact.LinkedIn)
}
