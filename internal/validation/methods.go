package validation

import (
	"fmt"
	"math"
)

// Error is one rejected field. Err carries the caller's sentinel, if any.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e Error) Unwrap() error {
	return e.Err
}

// Validator collects field errors in the order they were found.
type Validator struct {
	Errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make([]Error, 0)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string, err error) {
	v.Errors = append(v.Errors, Error{Field: field, Message: message, Err: err})
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string, err error) {
	if !ok {
		v.AddError(field, message, err)
	}
}

// Finite rejects NaN and infinities.
func (v *Validator) Finite(field string, value float64, err error) bool {
	ok := !math.IsNaN(value) && !math.IsInf(value, 0)
	v.Check(ok, field, "must be a finite number", err)
	return ok
}

// NonNegative checks value is finite and >= 0.
func (v *Validator) NonNegative(field string, value float64, err error) {
	if v.Finite(field, value, err) {
		v.Check(value >= 0, field, "must not be negative", err)
	}
}
