package pcomb

import (
	"fmt"
	"strings"
)

// ParseError describes why a parser did not recognize its input at a given
// position. A slice of human-readable alternatives is carried so that a
// choice can merge the expectations of every branch it tried.
type ParseError struct {
	position int
	expected []string
	cause    error
}

// NewParseError creates a passive error: this parser did not match, but
// sibling alternatives in an enclosing choice() should still be tried.
func NewParseError(position int, expected ...string) *ParseError {
	return &ParseError{position: position, expected: expected}
}

// NewFatalParseError wraps an underlying error indicating that parsing
// should stop altogether: the input matched far enough to commit, but a
// requirement downstream was violated. choice() does not try further
// alternatives after a fatal error.
func NewFatalParseError(position int, cause error, expected ...string) *ParseError {
	return &ParseError{position: position, expected: expected, cause: cause}
}

// Position is the offset at which the mismatch was detected.
func (e *ParseError) Position() int { return e.position }

// Error renders a human-readable message.
func (e *ParseError) Error() string {
	switch len(e.expected) {
	case 0:
		if e.cause != nil {
			return e.cause.Error()
		}
		return "parse failure"
	case 1:
		return fmt.Sprintf("expected %s", e.expected[0])
	default:
		return fmt.Sprintf("expected one of %s", strings.Join(e.expected, ", "))
	}
}

// Unwrap exposes the wrapped fatal cause, if any.
func (e *ParseError) Unwrap() error { return e.cause }

// IsFatal reports whether this error should abort an enclosing choice()
// rather than let it try the next alternative.
func (e *ParseError) IsFatal() bool { return e.cause != nil }

// Add merges another error's expectations into this one, keeping this
// error's own position. This error keeps its own cause if it has one;
// otherwise it takes other's, so merging a fatal error makes it fatal.
func (e *ParseError) Add(other *ParseError) {
	if other == nil {
		return
	}
	e.expected = append(e.expected, other.expected...)
	if e.cause == nil {
		e.cause = other.cause
	}
}

// ConstructionError reports a programmer mistake made while assembling a
// parser graph: an invalid character argument, inverted repeat bounds, or a
// non-character-class parser passed to Alternatives/Negate. It is raised
// immediately at build time via panic, never returned from Parse.
type ConstructionError struct {
	message string
}

func (e *ConstructionError) Error() string { return "pcomb: " + e.message }

func panicConstruction(format string, args ...interface{}) {
	panic(&ConstructionError{message: fmt.Sprintf(format, args...)})
}
