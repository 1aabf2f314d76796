package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrGrammar ErrorType = iota
	ErrMissingField
	ErrUnknownField
	ErrFileOp
	ErrInvalidConfig
)

var (
	// ErrMalformedLine is wrapped by grammar errors
	ErrMalformedLine = errors.New("malformed line")

	// ErrMissingMandatory is wrapped by missing field errors
	ErrMissingMandatory = errors.New("mandatory field missing")

	// ErrUnrecognized is wrapped by unknown field diagnostics
	ErrUnrecognized = errors.New("unrecognized field")
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrGrammar:
		return "Grammar"
	case ErrMissingField:
		return "MissingField"
	case ErrUnknownField:
		return "UnknownField"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// ParseError describes a failure located in the query output.
// Block is the 0-based block index, or -1 when the error is not tied to a
// block. Line is 1-based within the block, or 0 when not tied to a line.
type ParseError struct {
	Type  ErrorType
	Block int
	Line  int
	Field string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	var loc []string
	if e.Block >= 0 {
		loc = append(loc, fmt.Sprintf("block %d", e.Block))
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprintf("line %d", e.Line))
	}

	msg := fmt.Sprintf("[%s]", e.Type)
	if len(loc) > 0 {
		msg += " " + strings.Join(loc, ", ") + ":"
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q:", e.Field)
	}
	return fmt.Sprintf("%s %v", msg, e.Err)
}

// Unwrap returns the wrapped error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// PkgInfoError represents an error outside the parser (input, configuration)
type PkgInfoError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *PkgInfoError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *PkgInfoError) Unwrap() error {
	return e.Err
}

// ParseErrors returns every ParseError contained in err, following
// errors.Join trees and wrapping.
func ParseErrors(err error) []*ParseError {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*ParseError
		for _, e := range joined.Unwrap() {
			out = append(out, ParseErrors(e)...)
		}
		return out
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		return []*ParseError{pe}
	}
	return nil
}
