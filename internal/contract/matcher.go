package contract

import (
	"fmt"

	"patr/internal/suite"
)

// MismatchReason explains why a value did not satisfy a spec.
type MismatchReason string

const (
	ReasonMissing      MismatchReason = "missing"
	ReasonType         MismatchReason = "type"
	ReasonNotContainer MismatchReason = "not_container"
)

// rootPath names the top-level value in mismatch paths.
const rootPath = "$"

// MismatchError is the first spec entry an actual value failed.
type MismatchError struct {
	Path     string
	Reason   MismatchReason
	Expected suite.TypeTag
	Actual   Kind
}

func (e *MismatchError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return fmt.Sprintf("%s: required field is missing", e.Path)
	case ReasonNotContainer:
		return fmt.Sprintf("%s: expected object or array, got %s", e.Path, e.Actual)
	default:
		return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Actual)
	}
}

// Matches reports whether actual satisfies spec. See Match.
func Matches(spec *suite.RequiredSpec, actual Value) bool {
	return Match(spec, actual) == nil
}

// Match checks actual against spec and returns a *MismatchError for the first
// entry that fails, or nil.
//
// actual must be an object or an array. Every spec entry is looked up at the
// same key in actual (by name for objects, by index for arrays) and must have
// the tagged type, or, for a nested spec, be a container that matches it in
// turn. Keys in actual that the spec does not name are ignored, so an empty
// spec matches any object or array.
func Match(spec *suite.RequiredSpec, actual Value) error {
	if err := match(spec, actual, rootPath); err != nil {
		return err
	}
	return nil
}

func match(spec *suite.RequiredSpec, actual Value, path string) *MismatchError {
	if !actual.IsContainer() {
		return &MismatchError{Path: path, Reason: ReasonNotContainer, Expected: suite.TagArray, Actual: actual.Kind()}
	}
	if spec == nil {
		return nil
	}

	for _, field := range spec.Fields {
		fieldPath := joinPath(path, field.Name)

		value, ok := actual.Lookup(field.Name)
		if !ok {
			return &MismatchError{Path: fieldPath, Reason: ReasonMissing, Expected: field.Type}
		}

		if field.IsNested() {
			if err := match(field.Nested, value, fieldPath); err != nil {
				return err
			}
			continue
		}

		if value.Kind().Tag() != field.Type {
			return &MismatchError{Path: fieldPath, Reason: ReasonType, Expected: field.Type, Actual: value.Kind()}
		}
	}
	return nil
}

func joinPath(parent, key string) string {
	if parent == rootPath {
		return key
	}
	return parent + "." + key
}
