package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the nernst domain.
// These errors can be checked with errors.Is.
var (
	// ErrDomain is matched by every DomainError.
	ErrDomain = errors.New("nernst: input outside domain")

	// ErrInvalidRecord is returned when a batch row cannot be parsed.
	ErrInvalidRecord = errors.New("nernst: invalid record")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("nernst: invalid configuration")
)

// DomainError reports an input that violates the calculator's constraints.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("nernst: %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports ErrDomain as the kind of every DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// RecordError attaches a batch line number to a parse or domain error.
type RecordError struct {
	Line    int
	Name    string
	Wrapped error
}

func (e *RecordError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Name, e.Wrapped)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *RecordError) Unwrap() error {
	return e.Wrapped
}
