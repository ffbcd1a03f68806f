// Package errors defines the error taxonomy shared across the scanner,
// parser, and save orchestrator: ContainerError, ParseError and
// IncompleteParseError. All three satisfy the Error interface, which exposes
// a source Position for diagnostics in addition to the plain error message.
package errors

import (
	"errors"
	"fmt"

	"github.com/stellaris-save/parser/token"
)

// Error is the common interface implemented by every error this module
// returns. It adds source position information to the plain error interface.
type Error interface {
	error
	Position() token.Pos
	// Document names which of "meta" or "gamestate" (or a caller-supplied
	// document name) the error originated from.
	Document() string
}

// ParseError reports that the grammar failed to match at some position
// within a document. Snippet holds a short, human-scaled excerpt of the
// input starting at Pos, for inclusion in diagnostics.
type ParseError struct {
	document string
	pos      token.Pos
	message  string
	snippet  string
}

func newParseError(document string, pos token.Pos, snippet, format string, args ...interface{}) *ParseError {
	return &ParseError{
		document: document,
		pos:      pos,
		message:  fmt.Sprintf(format, args...),
		snippet:  snippet,
	}
}

func (e *ParseError) Error() string {
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s (near %q)", e.document, e.pos, e.message, e.snippet)
	}
	return fmt.Sprintf("%s: %s (near %q)", e.document, e.message, e.snippet)
}

func (e *ParseError) Position() token.Pos { return e.pos }
func (e *ParseError) Document() string    { return e.document }

// Newf creates a ParseError for the named document at pos, with snippet
// holding a short excerpt of the remaining input for diagnostics.
func Newf(document string, pos token.Pos, snippet, format string, args ...interface{}) *ParseError {
	return newParseError(document, pos, snippet, format, args...)
}

// IncompleteParseError reports that the grammar matched a prefix of the
// document but non-whitespace input remained afterwards.
type IncompleteParseError struct {
	document string
	pos      token.Pos
	snippet  string
}

// NewIncomplete creates an IncompleteParseError for the named document.
// pos marks where the unconsumed remainder begins.
func NewIncomplete(document string, pos token.Pos, snippet string) *IncompleteParseError {
	return &IncompleteParseError{document: document, pos: pos, snippet: snippet}
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("%s: %s: parse succeeded on a prefix but non-whitespace input remained (near %q)",
		e.document, e.pos, e.snippet)
}

func (e *IncompleteParseError) Position() token.Pos { return e.pos }
func (e *IncompleteParseError) Document() string    { return e.document }

// ContainerError reports a failure to open the save archive or to read one
// of its named entries. It carries no useful source position since it
// originates below the grammar, but still satisfies Error so callers can
// handle all three kinds uniformly.
type ContainerError struct {
	document string
	cause    error
}

// NewContainer wraps cause as a ContainerError for the named archive entry.
func NewContainer(document string, cause error) *ContainerError {
	return &ContainerError{document: document, cause: cause}
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: failed to read archive entry: %s", e.document, e.cause)
}

func (e *ContainerError) Position() token.Pos { return token.NoPos }
func (e *ContainerError) Document() string    { return e.document }
func (e *ContainerError) Unwrap() error       { return e.cause }

// As is a convenience wrapper around the standard errors.As for pulling an
// Error out of an error chain.
func As(err error, target *Error) bool {
	return errors.As(err, target)
}
