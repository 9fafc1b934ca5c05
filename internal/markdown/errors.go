package markdown

import "fmt"

// ParseError represents a failure to parse the Markdown resume source
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("markdown parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("markdown parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
