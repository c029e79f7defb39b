package sim

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/qsim/circuit"
	"github.com/teranos/qsim/errors"
	"github.com/teranos/qsim/gate"
)

// mixedThreeQubitCircuit exercises every arity and both fixed and
// parametrized gates on non-adjacent targets.
func mixedThreeQubitCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(3)
	require.NoError(t, err)
	c.H(0).
		RX(0.7, 1).
		CNOT(0, 2).
		T(1).
		SWAP(1, 2).
		Toffoli(0, 1, 2).
		CZ(2, 0).
		RZ(-1.2, 0).
		Y(2)
	return c
}

func TestStridedMatchesEmbeddedReference(t *testing.T) {
	c := mixedThreeQubitCircuit(t)

	strided := make([]complex128, 8)
	strided[0] = 1
	reference := make([]complex128, 8)
	reference[0] = 1

	for i, inst := range c.Instructions() {
		require.NoError(t, applyInstruction(strided, 3, inst), "instruction %d", i)
		reference = applyEmbedded(reference, 3, inst)

		for b := 0; b < 8; b++ {
			assert.InDelta(t, 0, cmplx.Abs(strided[b]-reference[b]), 1e-12,
				"instruction %d basis %d", i, b)
		}
	}
}

func TestApplyHadamard(t *testing.T) {
	amps := []complex128{1, 0}
	inst := circuit.Instruction{Kind: gate.H, Qubits: []int{0}, Matrix: gate.H.Matrix(0)}
	require.NoError(t, applyInstruction(amps, 1, inst))

	h := 1 / math.Sqrt2
	assert.InDelta(t, h, real(amps[0]), 1e-12)
	assert.InDelta(t, h, real(amps[1]), 1e-12)
}

func TestApplyCNOTRespectsQubitOrder(t *testing.T) {
	// Prepare |01⟩ (qubit 0 = 1). CNOT(0→1) must flip qubit 1: → |11⟩.
	amps := []complex128{0, 1, 0, 0}
	inst := circuit.Instruction{Kind: gate.CNOT, Qubits: []int{0, 1}, Matrix: gate.CNOT.Matrix(0)}
	require.NoError(t, applyInstruction(amps, 2, inst))
	assert.Equal(t, complex128(1), amps[3])

	// Reversed roles: control on qubit 1 leaves |01⟩ alone.
	amps = []complex128{0, 1, 0, 0}
	inst = circuit.Instruction{Kind: gate.CNOT, Qubits: []int{1, 0}, Matrix: gate.CNOT.Matrix(0)}
	require.NoError(t, applyInstruction(amps, 2, inst))
	assert.Equal(t, complex128(1), amps[1])
}

func TestApplyPreservesNorm(t *testing.T) {
	amps := make([]complex128, 8)
	amps[0] = 1
	for _, inst := range mixedThreeQubitCircuit(t).Instructions() {
		require.NoError(t, applyInstruction(amps, 3, inst))
		norm := 0.0
		for _, a := range amps {
			norm += real(a)*real(a) + imag(a)*imag(a)
		}
		assert.InDelta(t, 1.0, norm, 1e-9, "norm must survive %s", inst.Kind)
	}
}

func TestApplyRejectsUnsupportedArity(t *testing.T) {
	amps := make([]complex128, 16)
	amps[0] = 1

	inst := circuit.Instruction{Kind: gate.X, Qubits: []int{0, 1, 2, 3}, Matrix: gate.Identity(16)}
	err := applyInstruction(amps, 4, inst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedGateArity))

	inst = circuit.Instruction{Kind: gate.X, Qubits: nil, Matrix: gate.Identity(1)}
	err = applyInstruction(amps, 4, inst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedGateArity))
}

func TestApplyRejectsOutOfRangeQubit(t *testing.T) {
	amps := make([]complex128, 4)
	amps[0] = 1
	inst := circuit.Instruction{Kind: gate.X, Qubits: []int{7}, Matrix: gate.X.Matrix(0)}
	err := applyInstruction(amps, 2, inst)
	require.Error(t, err)
	assert.True(t, errors.IsCircuitStructureError(err))
}

func TestEmbedInstructionIsUnitary(t *testing.T) {
	inst := circuit.Instruction{Kind: gate.CNOT, Qubits: []int{2, 0}, Matrix: gate.CNOT.Matrix(0)}
	full := embedInstruction(3, inst)
	assert.Equal(t, 8, full.Dim())
	assert.True(t, full.IsUnitary(1e-10), "embedding must preserve unitarity")
}
