package suite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound is matched by a ConfigurationError of kind KindNotFound.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrorKind classifies a ConfigurationError.
type ErrorKind string

const (
	KindNotFound  ErrorKind = "not_found"
	KindIO        ErrorKind = "io"
	KindParse     ErrorKind = "parse"
	KindReference ErrorKind = "reference"
	KindInvalid   ErrorKind = "invalid"
	KindTemplate  ErrorKind = "template"
)

// ConfigurationError is a fatal problem with a suite: the file is missing or
// unreadable, or its content cannot be used to run tests.
type ConfigurationError struct {
	Kind    ErrorKind `json:"kind"`
	Path    string    `json:"path,omitempty"`    // file the suite was loaded from, if any
	Key     string    `json:"key,omitempty"`     // offending name or location, e.g. tests[2].base
	Message string    `json:"message"`           // human-readable description
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Key != "" {
		b.WriteString(e.Key)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConfigNotFound) succeed for missing files.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfigNotFound && e.Kind == KindNotFound
}

// NewReferenceError reports a test that names a base or auth profile that does not exist.
func NewReferenceError(key, kind, name string) *ConfigurationError {
	return &ConfigurationError{
		Kind:    KindReference,
		Key:     key,
		Message: fmt.Sprintf("unknown %s %q", kind, name),
	}
}

// ValidationErrors holds every problem found while validating a suite.
type ValidationErrors struct {
	Errors []*ConfigurationError `json:"errors"`
}

// Error implements the error interface for the collection
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "no configuration errors"
	}

	if len(v.Errors) == 1 {
		return v.Errors[0].Error()
	}

	return fmt.Sprintf("%d configuration errors: %s (and %d more)",
		len(v.Errors), v.Errors[0].Error(), len(v.Errors)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v.Errors))
	for i, e := range v.Errors {
		errs[i] = e
	}
	return errs
}

// HasErrors returns true if there are any errors in the collection
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add appends err to the collection
func (v *ValidationErrors) Add(err *ConfigurationError) {
	v.Errors = append(v.Errors, err)
}

// Report returns one line per error, for printing after a failed load.
func (v *ValidationErrors) Report() string {
	if len(v.Errors) == 0 {
		return "No configuration errors"
	}

	parts := []string{fmt.Sprintf("Suite validation failed (%d errors):", len(v.Errors))}
	for _, err := range v.Errors {
		parts = append(parts, fmt.Sprintf("  - [%s] %s", err.Kind, err.Error()))
	}
	return strings.Join(parts, "\n")
}
