package sim

import (
	"github.com/teranos/qsim/circuit"
	"github.com/teranos/qsim/errors"
	"github.com/teranos/qsim/gate"
)

// maxGateArity bounds the instruction sizes the engine executes.
const maxGateArity = 3

// applyInstruction applies one k-qubit instruction to the amplitude
// buffer of an n-qubit state, in place.
//
// Strided indexing: for every basis index whose target bits are all zero,
// the 2^k amplitudes reachable by varying the target bits are gathered,
// multiplied by the gate matrix, and scattered back. This is the
// O(2^n·2^k)-time, O(1)-extra-memory equivalent of embedding the matrix
// via Kronecker product with identity on the non-target qubits.
//
// Sub-index convention: the first listed qubit is the most significant
// bit of the gate's basis index, matching the gate package's matrices.
func applyInstruction(amps []complex128, numQubits int, inst circuit.Instruction) error {
	k := len(inst.Qubits)
	if k < 1 || k > maxGateArity {
		return errors.Wrapf(errors.ErrUnsupportedGateArity,
			"instruction %s acts on %d qubits, supported range is [1,%d]", inst.Kind, k, maxGateArity)
	}
	targetMask := 0
	for _, q := range inst.Qubits {
		if q < 0 || q >= numQubits {
			return errors.NewCircuitStructureError(
				"instruction %s: qubit %d out of range [0,%d)", inst.Kind, q, numQubits)
		}
		targetMask |= 1 << q
	}

	size := 1 << k
	if inst.Matrix.Dim() != size {
		return errors.AssertionFailedf("instruction %s: matrix dim %d does not match arity %d",
			inst.Kind, inst.Matrix.Dim(), k)
	}

	// offsets[s] spreads sub-index s onto the target bit positions.
	offsets := make([]int, size)
	for s := 0; s < size; s++ {
		off := 0
		for j, q := range inst.Qubits {
			if s>>(k-1-j)&1 == 1 {
				off |= 1 << q
			}
		}
		offsets[s] = off
	}

	dim := len(amps)
	in := make([]complex128, size)
	for base := 0; base < dim; base++ {
		if base&targetMask != 0 {
			continue
		}
		for s := 0; s < size; s++ {
			in[s] = amps[base|offsets[s]]
		}
		for row := 0; row < size; row++ {
			var acc complex128
			for col := 0; col < size; col++ {
				acc += inst.Matrix[row][col] * in[col]
			}
			amps[base|offsets[row]] = acc
		}
	}
	return nil
}

// embedInstruction builds the full 2^n × 2^n unitary of a k-qubit
// instruction embedded on its target qubits, identity elsewhere. This is
// the explicit Kronecker-product reference for the strided path; the two
// must agree bit-for-bit within floating tolerance. O(4^n) memory, so it
// is only viable for small n.
func embedInstruction(numQubits int, inst circuit.Instruction) gate.Matrix {
	k := len(inst.Qubits)
	targetMask := 0
	for _, q := range inst.Qubits {
		targetMask |= 1 << q
	}

	sub := func(index int) int {
		s := 0
		for j, q := range inst.Qubits {
			if index>>q&1 == 1 {
				s |= 1 << (k - 1 - j)
			}
		}
		return s
	}

	dim := 1 << numQubits
	full := make(gate.Matrix, dim)
	for row := 0; row < dim; row++ {
		full[row] = make([]complex128, dim)
		for col := 0; col < dim; col++ {
			if row&^targetMask != col&^targetMask {
				continue
			}
			full[row][col] = inst.Matrix[sub(row)][sub(col)]
		}
	}
	return full
}

// applyEmbedded multiplies the embedded full matrix into the amplitude
// vector. Reference semantics for cross-checking applyInstruction.
func applyEmbedded(amps []complex128, numQubits int, inst circuit.Instruction) []complex128 {
	full := embedInstruction(numQubits, inst)
	out := make([]complex128, len(amps))
	for row := range full {
		var acc complex128
		for col, u := range full[row] {
			if u != 0 {
				acc += u * amps[col]
			}
		}
		out[row] = acc
	}
	return out
}
