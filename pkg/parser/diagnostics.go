package parser

import "fmt"

// SourceLocation captures a source position for parser diagnostics.
type SourceLocation struct {
	Line   int
	Column int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return e.Message
}

func errorAt(line, column int, format string, args ...any) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Location: SourceLocation{Line: line, Column: column},
	}
}
