package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
		check    func(error) bool
	}{
		{"configuration", ErrConfiguration, IsConfigurationError},
		{"circuit structure", ErrCircuitStructure, IsCircuitStructureError},
		{"degenerate state", ErrDegenerateState, IsDegenerateStateError},
		{"numerical instability", ErrNumericalInstability, IsNumericalInstabilityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.sentinel, "some context")
			assert.True(t, tt.check(wrapped), "check should see through wrapping")
			assert.True(t, Is(wrapped, tt.sentinel))
			assert.False(t, tt.check(nil), "nil is never a taxonomy error")
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrConfiguration,
		ErrCircuitStructure,
		ErrUnsupportedGateArity,
		ErrDegenerateState,
		ErrNumericalInstability,
		ErrDimensionMismatch,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %d must not match sentinel %d", i, j)
		}
	}
}

func TestNewConfigurationError(t *testing.T) {
	err := NewConfigurationError("num_qubits must be positive, got %d", -3)
	require.NotNil(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "num_qubits must be positive, got -3")
}

func TestNewCircuitStructureError(t *testing.T) {
	err := NewCircuitStructureError("qubit %d out of range [0,%d)", 5, 3)
	require.NotNil(t, err)
	assert.True(t, IsCircuitStructureError(err))
	assert.Contains(t, err.Error(), "qubit 5 out of range [0,3)")
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	// Format with stack trace
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
}

func ExampleWrap() {
	baseErr := New("probe failed")
	err := Wrap(baseErr, "failed to resolve backend")
	fmt.Println(err)
	// Output: failed to resolve backend: probe failed
}
