// Package circuit provides the append-only quantum circuit builder.
//
// A Circuit is created empty, mutated only through fluent gate-append
// calls, and treated as read-only once handed to a simulator. It is never
// mutated concurrently with simulation; a built circuit is safe to share
// across concurrent readers. Inverse and Copy build new circuits rather
// than mutating.
//
// Structural validation (index range, pairwise-distinct targets) is
// centralized in Validate rather than scattered across per-gate asserts;
// the simulator re-checks defensively on first use.
package circuit

import (
	"fmt"
	"strings"

	"github.com/teranos/qsim/errors"
	"github.com/teranos/qsim/gate"
)

// Instruction is one gate application: a gate kind, its ordered target
// qubits, the materialized unitary, and the rotation angle for
// parametrized gates. Immutable once appended.
type Instruction struct {
	Kind   gate.Kind
	Qubits []int
	Theta  float64
	Matrix gate.Matrix
}

// Circuit is an ordered, append-only instruction list over a fixed number
// of qubits.
type Circuit struct {
	numQubits    int
	instructions []Instruction
}

// New creates an empty circuit over numQubits qubits.
func New(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, errors.NewConfigurationError("num_qubits must be positive, got %d", numQubits)
	}
	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the fixed qubit count of the circuit.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Instructions returns the instruction sequence. Callers must treat the
// returned slice and its elements as read-only.
func (c *Circuit) Instructions() []Instruction {
	return c.instructions
}

func (c *Circuit) append(k gate.Kind, theta float64, qubits ...int) *Circuit {
	c.instructions = append(c.instructions, Instruction{
		Kind:   k,
		Qubits: qubits,
		Theta:  theta,
		Matrix: k.Matrix(theta),
	})
	return c
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit { return c.append(gate.H, 0, q) }

// X appends a Pauli-X (NOT) gate on qubit q.
func (c *Circuit) X(q int) *Circuit { return c.append(gate.X, 0, q) }

// Y appends a Pauli-Y gate on qubit q.
func (c *Circuit) Y(q int) *Circuit { return c.append(gate.Y, 0, q) }

// Z appends a Pauli-Z gate on qubit q.
func (c *Circuit) Z(q int) *Circuit { return c.append(gate.Z, 0, q) }

// S appends a phase gate on qubit q.
func (c *Circuit) S(q int) *Circuit { return c.append(gate.S, 0, q) }

// T appends a T gate on qubit q.
func (c *Circuit) T(q int) *Circuit { return c.append(gate.T, 0, q) }

// I appends an identity gate on qubit q.
func (c *Circuit) I(q int) *Circuit { return c.append(gate.I, 0, q) }

// RX appends a rotation around the X axis by theta on qubit q.
func (c *Circuit) RX(theta float64, q int) *Circuit { return c.append(gate.RX, theta, q) }

// RY appends a rotation around the Y axis by theta on qubit q.
func (c *Circuit) RY(theta float64, q int) *Circuit { return c.append(gate.RY, theta, q) }

// RZ appends a rotation around the Z axis by theta on qubit q.
func (c *Circuit) RZ(theta float64, q int) *Circuit { return c.append(gate.RZ, theta, q) }

// CNOT appends a controlled-NOT gate with the given control and target.
func (c *Circuit) CNOT(control, target int) *Circuit { return c.append(gate.CNOT, 0, control, target) }

// CX is an alias for CNOT.
func (c *Circuit) CX(control, target int) *Circuit { return c.CNOT(control, target) }

// CZ appends a controlled-Z gate.
func (c *Circuit) CZ(control, target int) *Circuit { return c.append(gate.CZ, 0, control, target) }

// SWAP appends a SWAP gate on qubits a and b.
func (c *Circuit) SWAP(a, b int) *Circuit { return c.append(gate.SWAP, 0, a, b) }

// Toffoli appends a doubly controlled NOT gate (CCX).
func (c *Circuit) Toffoli(control1, control2, target int) *Circuit {
	return c.append(gate.CCX, 0, control1, control2, target)
}

// Validate performs the single structural-validation pass over all
// instructions: every target index must lie in [0, numQubits) and targets
// within one instruction must be pairwise distinct. The error names the
// offending instruction index.
func (c *Circuit) Validate() error {
	for idx, inst := range c.instructions {
		seen := make(map[int]bool, len(inst.Qubits))
		for _, q := range inst.Qubits {
			if q < 0 || q >= c.numQubits {
				return errors.NewCircuitStructureError(
					"instruction %d (%s): qubit %d out of range [0,%d)", idx, inst.Kind, q, c.numQubits)
			}
			if seen[q] {
				return errors.NewCircuitStructureError(
					"instruction %d (%s): duplicate qubit %d", idx, inst.Kind, q)
			}
			seen[q] = true
		}
	}
	return nil
}

// Depth returns the minimum sequential layer count when gates on disjoint
// qubits execute in parallel. Single left-to-right pass over a per-qubit
// last-layer counter; an empty circuit has depth 0.
func (c *Circuit) Depth() int {
	lastLayer := make([]int, c.numQubits)
	depth := 0
	for _, inst := range c.instructions {
		layer := 0
		for _, q := range inst.Qubits {
			if q < 0 || q >= c.numQubits {
				continue // structural errors surface in Validate, not here
			}
			if lastLayer[q] > layer {
				layer = lastLayer[q]
			}
		}
		layer++
		for _, q := range inst.Qubits {
			if q >= 0 && q < c.numQubits {
				lastLayer[q] = layer
			}
		}
		if layer > depth {
			depth = layer
		}
	}
	return depth
}

// GateCount returns the total number of instructions.
func (c *Circuit) GateCount() int {
	return len(c.instructions)
}

// CountOps returns the per-gate-name multiset of instruction counts.
func (c *Circuit) CountOps() map[string]int {
	ops := make(map[string]int)
	for _, inst := range c.instructions {
		ops[inst.Kind.String()]++
	}
	return ops
}

// Inverse builds a new circuit with reversed instruction order and each
// matrix conjugate-transposed. Correct by construction for any unitary
// regardless of gate kind; rotation angles are not symbolically negated.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{
		numQubits:    c.numQubits,
		instructions: make([]Instruction, 0, len(c.instructions)),
	}
	for i := len(c.instructions) - 1; i >= 0; i-- {
		inst := c.instructions[i]
		inv.instructions = append(inv.instructions, Instruction{
			Kind:   inst.Kind,
			Qubits: inst.Qubits,
			Theta:  inst.Theta,
			Matrix: inst.Matrix.Dagger(),
		})
	}
	return inv
}

// Copy returns a new circuit sharing the immutable instruction values.
func (c *Circuit) Copy() *Circuit {
	instructions := make([]Instruction, len(c.instructions))
	copy(instructions, c.instructions)
	return &Circuit{numQubits: c.numQubits, instructions: instructions}
}

// String renders a short description for logging. Not a stable format.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Circuit(%d qubits, %d gates):", c.numQubits, len(c.instructions))
	for _, inst := range c.instructions {
		if inst.Kind.Parametrized() {
			fmt.Fprintf(&b, " %s(%.4g)%v", inst.Kind, inst.Theta, inst.Qubits)
		} else {
			fmt.Fprintf(&b, " %s%v", inst.Kind, inst.Qubits)
		}
	}
	return b.String()
}
