// Package parsererror defines the typed errors raised by the message mappers.
package parsererror

import (
	"fmt"
	"strings"
)

// InvalidStructureError reports a required node or field that is absent or
// malformed for the message type being parsed. It is always fatal to the
// current parse call.
type InvalidStructureError struct {
	MessageType string
	Path        string
	Reason      string
}

func (e *InvalidStructureError) Error() string {
	if e.MessageType != "" {
		return fmt.Sprintf("%s: invalid structure at %s: %s", e.MessageType, e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid structure at %s: %s", e.Path, e.Reason)
}

// NewInvalidStructure builds an InvalidStructureError for the given field path.
func NewInvalidStructure(messageType, path, reason string) *InvalidStructureError {
	return &InvalidStructureError{MessageType: messageType, Path: path, Reason: reason}
}

// InvalidXMLNamespaceError reports a document whose declared namespace does not
// start with the URN prefix expected by the mapper it was routed to.
type InvalidXMLNamespaceError struct {
	ExpectedPrefix string
	Actual         string
}

func (e *InvalidXMLNamespaceError) Error() string {
	return fmt.Sprintf("unexpected XML namespace %q, want prefix %q", e.Actual, e.ExpectedPrefix)
}

// InvalidXMLError reports input with no recognizable document wrapper at all:
// not XML, or XML without the expected top-level element.
type InvalidXMLError struct {
	Expected string
	Err      error
}

func (e *InvalidXMLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid XML document (want <%s>): %v", e.Expected, e.Err)
	}
	return fmt.Sprintf("invalid XML document: missing <%s> wrapper", e.Expected)
}

func (e *InvalidXMLError) Unwrap() error {
	return e.Err
}

// ParseError wraps a leaf-level conversion failure (bad amount, bad date) with
// the field path it occurred at.
type ParseError struct {
	MessageType string
	Path        string
	Value       string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s=%q: %v", e.MessageType, e.Path, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationErrors aggregates hard validation failures. Warnings are never
// part of this type; they are returned to the caller as plain values.
type ValidationErrors struct {
	Errors []string
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// HasErrors reports whether any hard error was collected.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}
