package fetchxml

import "fmt"

// ParseError indicates that input text could not be parsed as well-formed XML.
type ParseError struct {
	Err error
}

// Error returns the error message for a ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("fetchxml: malformed document: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructuralError indicates that a well-formed document lacks an element the
// operation requires, such as an entity element.
type StructuralError struct {
	Message string
}

// Error returns the error message for a StructuralError.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("fetchxml: %s", e.Message)
}
