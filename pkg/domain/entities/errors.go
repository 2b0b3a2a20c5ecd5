package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies input errors detected before a simulation starts
type ErrorKind int

const (
	ArgumentCount ErrorKind = iota
	NonIntegerArgument
	MalformedTuple
	Validation
)

// String method for ErrorKind enum
func (k ErrorKind) String() string {
	switch k {
	case ArgumentCount:
		return "argument count error"
	case NonIntegerArgument:
		return "non-integer argument error"
	case MalformedTuple:
		return "malformed tuple error"
	case Validation:
		return "validation error"
	default:
		return "unknown error"
	}
}

// SimulationError is returned for any invalid input. Shortfall and waste are
// simulation outcomes and never produce one.
type SimulationError struct {
	Kind    ErrorKind
	Input   string
	Message string
	Err     error
}

func (e *SimulationError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Input, e.Message)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewArgumentCountError reports missing or surplus positional arguments
func NewArgumentCountError(expected, got int) *SimulationError {
	return &SimulationError{
		Kind:    ArgumentCount,
		Message: fmt.Sprintf("expected %d positional arguments, got %d", expected, got),
	}
}

// NewNonIntegerArgumentError reports a horizon that is not a positive integer
func NewNonIntegerArgumentError(input string, err error) *SimulationError {
	return &SimulationError{
		Kind:    NonIntegerArgument,
		Input:   input,
		Message: "number of days must be a positive integer",
		Err:     err,
	}
}

// NewMalformedTupleError reports a token that is not of the form (day,quantity)
func NewMalformedTupleError(token, reason string) *SimulationError {
	return &SimulationError{
		Kind:    MalformedTuple,
		Input:   token,
		Message: reason,
	}
}

// NewValidationError reports a well-formed delivery with out-of-range values
func NewValidationError(input, reason string) *SimulationError {
	return &SimulationError{
		Kind:    Validation,
		Input:   input,
		Message: reason,
	}
}

// IsKind reports whether err wraps a SimulationError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		return false
	}
	return simErr.Kind == kind
}
