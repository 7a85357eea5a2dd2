package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrMissingField  = errors.New("missing field")
	ErrIO            = errors.New("io error")
	ErrExecution     = errors.New("execution error")

	// ErrMalformedNumber wraps ErrMissingField: a value that fails to parse is
	// handled exactly like an absent one.
	ErrMalformedNumber = fmt.Errorf("malformed number: %w", ErrMissingField)
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindMissingField    ErrorKind = "missing_field"
	KindMalformedNumber ErrorKind = "malformed_number"
	KindIO              ErrorKind = "io"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line string // Optional: offending report line
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line != "" {
		base += fmt.Sprintf(" (line=%q)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
