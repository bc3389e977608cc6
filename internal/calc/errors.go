// Package calc implements the antenna calculators.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidInput is reported for non-positive or missing inputs
	ErrInvalidInput = errors.New("invalid input")
	// ErrWireTooThick is reported when the J-pole spacing cannot fit the wire
	ErrWireTooThick = errors.New("wire diameter exceeds the permissible limit")
)

// ValidationError collects every input problem found before computing.
type ValidationError struct {
	Messages []string
	// Err is an optional sentinel the messages stand for.
	Err error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CalculationError wraps a failure that happened while computing.
type CalculationError struct {
	Err error
}

func (e *CalculationError) Error() string {
	return "calculation error: " + e.Err.Error()
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries input validation messages.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Messages returns the validation messages carried by err, or the error
// text itself for any other error.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return []string{err.Error()}
}

// Run calls fn and normalizes its failure: validation errors pass through,
// anything else, including a panic, becomes a *CalculationError.
func Run[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &CalculationError{Err: fmt.Errorf("%v", r)}
		}
	}()

	result, err = fn()
	if err == nil || IsValidation(err) {
		return result, err
	}
	var ce *CalculationError
	if errors.As(err, &ce) {
		return result, err
	}
	return result, &CalculationError{Err: err}
}

type validator struct {
	messages []string
}

func (v *validator) check(ok bool, message string) {
	if !ok {
		v.messages = append(v.messages, message)
	}
}

func (v *validator) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}

// finite returns a CalculationError naming the first non-finite value.
func finite(values map[string]float64) error {
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &CalculationError{Err: fmt.Errorf("%s is not a finite number", name)}
		}
	}
	return nil
}
