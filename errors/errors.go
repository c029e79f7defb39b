// Package errors provides error handling for qsim.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrCircuitStructure) {
//	    // handle malformed circuit
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors forming the simulator's error taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrConfiguration indicates an invalid qubit count, backend name,
	// precision name, or seed at construction time. Fatal, never retried.
	ErrConfiguration = New("invalid configuration")

	// ErrCircuitStructure indicates an out-of-range or duplicate qubit
	// index in a circuit instruction. Fatal.
	ErrCircuitStructure = New("malformed circuit structure")

	// ErrUnsupportedGateArity indicates an instruction acting on a number
	// of qubits the execution engine does not support. Fatal at execution.
	ErrUnsupportedGateArity = New("unsupported gate arity")

	// ErrDegenerateState indicates an attempt to normalize a near-zero
	// amplitude vector. Fatal, no recovery.
	ErrDegenerateState = New("degenerate quantum state")

	// ErrNumericalInstability indicates NaN/Inf amplitudes or a
	// probability distribution that does not sum to ~1. Reported, never
	// silently auto-corrected, so gate-application bugs are not masked.
	ErrNumericalInstability = New("numerical instability")

	// ErrDimensionMismatch indicates two state vectors of different
	// dimension were combined.
	ErrDimensionMismatch = New("state dimension mismatch")
)

// IsConfigurationError checks if an error is or wraps ErrConfiguration.
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsCircuitStructureError checks if an error is or wraps ErrCircuitStructure.
func IsCircuitStructureError(err error) bool {
	return err != nil && Is(err, ErrCircuitStructure)
}

// IsDegenerateStateError checks if an error is or wraps ErrDegenerateState.
func IsDegenerateStateError(err error) bool {
	return err != nil && Is(err, ErrDegenerateState)
}

// IsNumericalInstabilityError checks if an error is or wraps ErrNumericalInstability.
func IsNumericalInstabilityError(err error) bool {
	return err != nil && Is(err, ErrNumericalInstability)
}

// NewConfigurationError creates a configuration error with a formatted message.
func NewConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrConfiguration, Newf(format, args...).Error())
}

// NewCircuitStructureError creates a circuit-structure error with a formatted message.
func NewCircuitStructureError(format string, args ...interface{}) error {
	return Wrap(ErrCircuitStructure, Newf(format, args...).Error())
}
