package domain

import "fmt"

// InitializationError reports a required artifact that could not be loaded
// at startup. It is fatal: no evaluation may run after it.
type InitializationError struct {
	Artifact string // "model" or "catalog"
	Path     string
	Err      error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("load %s artifact %q: %v", e.Artifact, e.Path, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// SchemaError reports a feature record that cannot be completed because the
// catalog lacks a field or has no values for it. It signals an integration
// bug, not bad user input.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: field %s: %s", e.Field, e.Reason)
}

// ValidationError reports a user-supplied value the form would not allow.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid field %s=%q: %s", e.Field, e.Value, e.Reason)
}

// ClassificationError wraps any failure of the external classifier,
// including a malformed probability vector.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
