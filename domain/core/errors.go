package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Target function contract errors
	ErrFunctionNotProvided = errors.New("target function not provided")
	ErrFunctionNotCallable = errors.New("target is not a callable function")
	ErrFunctionExecution   = errors.New("target function failed during evaluation")
	ErrFunctionReturnType  = errors.New("target function returned a non-numeric sequence")
	ErrFunctionReturnShape = errors.New("target function output length differs from input length")

	// Configuration errors
	ErrUnknownCriterion = errors.New("unknown criterion")
	ErrUnknownFunction  = errors.New("unknown function")
	ErrUnknownMethod    = errors.New("unknown simulation method")

	// Usage errors
	ErrEngineUninitialized = errors.New("engine is not initialized")
	ErrInvalidSampleCount  = errors.New("sample count must be a positive integer")
	ErrMissingSimulation   = errors.New("no simulation result provided")
)

// Error constructors with context
func NewNotCallableError(candidate interface{}) error {
	return fmt.Errorf("%w: got %T", ErrFunctionNotCallable, candidate)
}

func NewExecutionError(cause interface{}) error {
	return fmt.Errorf("%w: %v", ErrFunctionExecution, cause)
}

func NewReturnTypeError(actual interface{}) error {
	return fmt.Errorf("%w: got %T instead of []float64", ErrFunctionReturnType, actual)
}

func NewReturnShapeError(expected, actual int) error {
	return fmt.Errorf("%w: X(%d), Y(%d)", ErrFunctionReturnShape, expected, actual)
}

func NewUnknownCriterionError(name string, valid []string) error {
	return fmt.Errorf("%w: %q, choose between %s", ErrUnknownCriterion, name, strings.Join(valid, ", "))
}

func NewUnknownFunctionError(name string, valid []string) error {
	return fmt.Errorf("%w: %q, choose between %s", ErrUnknownFunction, name, strings.Join(valid, ", "))
}

func NewUnknownMethodError(name string, valid []string) error {
	return fmt.Errorf("%w: %q, choose between %s", ErrUnknownMethod, name, strings.Join(valid, ", "))
}

func NewInvalidSampleCountError(n int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
}

// Error checking helpers
func IsFunctionContractError(err error) bool {
	return errors.Is(err, ErrFunctionNotProvided) ||
		errors.Is(err, ErrFunctionNotCallable) ||
		errors.Is(err, ErrFunctionExecution) ||
		errors.Is(err, ErrFunctionReturnType) ||
		errors.Is(err, ErrFunctionReturnShape)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownCriterion) ||
		errors.Is(err, ErrUnknownFunction) ||
		errors.Is(err, ErrUnknownMethod)
}

func IsUsageError(err error) bool {
	return errors.Is(err, ErrEngineUninitialized) ||
		errors.Is(err, ErrInvalidSampleCount) ||
		errors.Is(err, ErrMissingSimulation)
}
