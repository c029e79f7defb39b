// Package state owns the dense complex amplitude vector of an n-qubit
// system.
//
// A StateVector is mutated in place during gate application, so every
// simulation call must own an exclusive, non-aliased copy; Copy exists to
// make that ownership transfer explicit. A vector used as a probability
// source must have unit L2 norm — callers normalize otherwise.
package state

import (
	"math"
	"math/cmplx"

	"github.com/teranos/qsim/errors"
)

// normEpsilon is the threshold below which a vector is considered
// degenerate and cannot be normalized.
const normEpsilon = 1e-12

// StateVector holds the 2^n complex amplitudes of an n-qubit system.
type StateVector struct {
	amplitudes []complex128
	numQubits  int
}

// Zero returns the computational zero state |0...0⟩ on n qubits.
func Zero(n int) (*StateVector, error) {
	if n <= 0 {
		return nil, errors.NewConfigurationError("num_qubits must be positive, got %d", n)
	}
	// 2^n must stay addressable; beyond 62 qubits 1<<n overflows int64.
	if n >= 63 {
		return nil, errors.NewConfigurationError("%d qubits exceeds addressable state space", n)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &StateVector{amplitudes: amps, numQubits: n}, nil
}

// FromAmplitudes builds a state vector from a caller-supplied amplitude
// buffer. The buffer is copied, never aliased. Its length must be a power
// of two of at least 2.
func FromAmplitudes(amps []complex128) (*StateVector, error) {
	dim := len(amps)
	if dim < 2 || dim&(dim-1) != 0 {
		return nil, errors.NewConfigurationError("amplitude buffer length must be a power of two ≥ 2, got %d", dim)
	}
	n := 0
	for d := dim; d > 1; d >>= 1 {
		n++
	}
	buf := make([]complex128, dim)
	copy(buf, amps)
	return &StateVector{amplitudes: buf, numQubits: n}, nil
}

// NumQubits returns the number of qubits.
func (sv *StateVector) NumQubits() int {
	return sv.numQubits
}

// Dim returns the dimension 2^n of the amplitude buffer.
func (sv *StateVector) Dim() int {
	return len(sv.amplitudes)
}

// Amplitudes exposes the underlying buffer for in-place gate application.
// The caller must hold exclusive ownership of the vector.
func (sv *StateVector) Amplitudes() []complex128 {
	return sv.amplitudes
}

// Amplitude returns the amplitude of the given basis state.
func (sv *StateVector) Amplitude(basis int) complex128 {
	return sv.amplitudes[basis]
}

// Norm returns the L2 norm of the vector.
func (sv *StateVector) Norm() float64 {
	sum := 0.0
	for _, a := range sv.amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Normalize rescales the vector in place to unit L2 norm. A near-zero
// vector cannot be normalized and yields ErrDegenerateState.
func (sv *StateVector) Normalize() error {
	norm := sv.Norm()
	if norm < normEpsilon {
		return errors.Wrapf(errors.ErrDegenerateState, "norm %g below epsilon %g", norm, normEpsilon)
	}
	inv := complex(1/norm, 0)
	for i := range sv.amplitudes {
		sv.amplitudes[i] *= inv
	}
	return nil
}

// Probabilities returns |amplitude|² per basis index. For a normalized
// vector the probabilities sum to 1 within tolerance.
func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.amplitudes))
	for i, a := range sv.amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// InnerProduct returns ⟨sv|other⟩ = Σ conj(sv_i)·other_i.
func (sv *StateVector) InnerProduct(other *StateVector) (complex128, error) {
	if len(sv.amplitudes) != len(other.amplitudes) {
		return 0, errors.Wrapf(errors.ErrDimensionMismatch,
			"dimensions %d and %d", len(sv.amplitudes), len(other.amplitudes))
	}
	var sum complex128
	for i, a := range sv.amplitudes {
		sum += cmplx.Conj(a) * other.amplitudes[i]
	}
	return sum, nil
}

// Copy deep-copies the amplitude buffer. Required because the simulator
// mutates state in place and independent runs must never observe aliased
// amplitudes.
func (sv *StateVector) Copy() *StateVector {
	buf := make([]complex128, len(sv.amplitudes))
	copy(buf, sv.amplitudes)
	return &StateVector{amplitudes: buf, numQubits: sv.numQubits}
}

// CheckFinite reports ErrNumericalInstability if any amplitude is NaN or
// Inf. Detection only — the state is never auto-corrected, so upstream
// gate-application bugs are not masked.
func (sv *StateVector) CheckFinite() error {
	for i, a := range sv.amplitudes {
		if math.IsNaN(real(a)) || math.IsNaN(imag(a)) ||
			math.IsInf(real(a), 0) || math.IsInf(imag(a), 0) {
			return errors.Wrapf(errors.ErrNumericalInstability,
				"non-finite amplitude at basis index %d", i)
		}
	}
	return nil
}
