// ABOUTME: Parse error taxonomy for the email text-extraction pipeline.
// ABOUTME: Malformed records are reported, never silently dropped.
package textproc

import (
	"errors"
	"fmt"
)

// ParseKind classifies what a malformed source text was missing.
type ParseKind string

const (
	MissingDate  ParseKind = "missing date"
	MissingMood  ParseKind = "missing mood rating"
	MissingTable ParseKind = "missing table"
	BadNumber    ParseKind = "malformed numeric cell"
)

// ParseError reports a record that could not be extracted from source text.
type ParseError struct {
	Kind   ParseKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse: %s", e.Kind)
	}
	return fmt.Sprintf("parse: %s: %s", e.Kind, e.Detail)
}

// IsParseError reports whether err is (or wraps) a ParseError of the given kind.
func IsParseError(err error, kind ParseKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}
