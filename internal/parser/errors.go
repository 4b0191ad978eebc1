package parser

import "fmt"

// SyntaxError reports input that does not match the grammar in its entirety.
//
// It covers every malformed-input case: trailing garbage after a complete
// expression, empty groupings, a keyword used as a clause field, empty
// clause values, empty input, and expressions nested beyond the supported
// depth. A SyntaxError never carries a partial tree.
type SyntaxError struct {
	// Offset is the byte offset in the input where parsing failed.
	Offset int

	// Message is a human-readable description of what was expected.
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}
