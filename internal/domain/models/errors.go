package models

import "fmt"

// ValidationError reports a record that cannot be created: a required field
// is missing or an amount/quantity is out of range. It is the only error
// kind the engine surfaces to callers as an explicit failure; the record is
// simply never created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidAmount checks the non-negative money invariant shared by purchases,
// expenses and revenues.
func ValidAmount(field string, amount float64) error {
	if amount < 0 {
		return Invalid(field, "must not be negative")
	}
	return nil
}
