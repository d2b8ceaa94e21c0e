package vat

import (
	"errors"
	"strings"

	"vatcalc/internal/validation"
)

// Service errors
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidFlatFee    = errors.New("invalid flat fee")
	ErrInvalidPercentFee = errors.New("invalid percent fee")
	ErrResultOutOfRange  = errors.New("result out of range")
)

// ValidationError collects every rejected field of a request.
type ValidationError struct {
	Fields []validation.Error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match the sentinel of any rejected field.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f)
	}
	return out
}
