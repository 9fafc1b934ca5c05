package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "R&D", `R\&D`},
		{"percent", "grew 40%", `grew 40\%`},
		{"dollar", "$2M budget", `\$2M budget`},
		{"hash", "team #1", `team \#1`},
		{"underscore", "snake_case", `snake\_case`},
		{"braces", "{config}", `\{config\}`},
		{"backslash", `C:\bin`, `C:\textbackslash{}bin`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"plain text untouched", "Senior Engineer", "Senior Engineer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeLaTeX_AllSpecialsAtOnce(t *testing.T) {
	got := EscapeLaTeX("&%$#_{}")

	assert.Equal(t, `\&\%\$\#\_\{\}`, got)
}
