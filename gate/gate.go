// Package gate supplies the built-in quantum gate library: fixed unitary
// matrices and parametrized rotation generators.
//
// Gate kinds form a closed enum; each kind knows its arity, its canonical
// lower-case name, and how to materialize its unitary matrix. Every matrix
// returned is freshly allocated, so callers may retain or transpose it
// without aliasing hazards. The package has no side effects.
//
// Qubit ordering convention: for a multi-qubit gate the first listed qubit
// is the most significant bit of the gate's basis index, so CNOT with
// targets (control, target) maps |10⟩ to |11⟩.
package gate

import (
	"math"
	"math/cmplx"
)

// Kind identifies a built-in gate.
type Kind int

const (
	I Kind = iota
	X
	Y
	Z
	H
	S
	T
	RX
	RY
	RZ
	CNOT
	CZ
	SWAP
	CCX
)

var kindNames = map[Kind]string{
	I:    "i",
	X:    "x",
	Y:    "y",
	Z:    "z",
	H:    "h",
	S:    "s",
	T:    "t",
	RX:   "rx",
	RY:   "ry",
	RZ:   "rz",
	CNOT: "cnot",
	CZ:   "cz",
	SWAP: "swap",
	CCX:  "ccx",
}

// String returns the canonical lower-case gate name used in operation counts.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Arity returns the number of qubits the gate acts on.
func (k Kind) Arity() int {
	switch k {
	case CNOT, CZ, SWAP:
		return 2
	case CCX:
		return 3
	default:
		return 1
	}
}

// Parametrized reports whether the gate takes a rotation angle.
func (k Kind) Parametrized() bool {
	return k == RX || k == RY || k == RZ
}

// Matrix materializes the gate's unitary. theta is ignored for fixed gates.
// The returned matrix is freshly allocated on every call.
//
// Rotations follow the spin-1/2 convention: RX/RY/RZ(2π) yields the
// global-phase matrix −I, not the identity.
func (k Kind) Matrix(theta float64) Matrix {
	switch k {
	case I:
		return Identity(2)
	case X:
		return Matrix{
			{0, 1},
			{1, 0},
		}
	case Y:
		return Matrix{
			{0, -1i},
			{1i, 0},
		}
	case Z:
		return Matrix{
			{1, 0},
			{0, -1},
		}
	case H:
		h := complex(1/math.Sqrt2, 0)
		return Matrix{
			{h, h},
			{h, -h},
		}
	case S:
		return Matrix{
			{1, 0},
			{0, 1i},
		}
	case T:
		return Matrix{
			{1, 0},
			{0, cmplx.Rect(1, math.Pi/4)},
		}
	case RX:
		c := complex(math.Cos(theta/2), 0)
		s := complex(0, -math.Sin(theta/2))
		return Matrix{
			{c, s},
			{s, c},
		}
	case RY:
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return Matrix{
			{c, -s},
			{s, c},
		}
	case RZ:
		return Matrix{
			{cmplx.Rect(1, -theta/2), 0},
			{0, cmplx.Rect(1, theta/2)},
		}
	case CNOT:
		return Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}
	case CZ:
		return Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		}
	case SWAP:
		return Matrix{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}
	case CCX:
		m := Identity(8)
		m[6][6], m[6][7] = 0, 1
		m[7][6], m[7][7] = 1, 0
		return m
	default:
		return nil
	}
}

// Kinds lists every built-in gate kind, in declaration order.
func Kinds() []Kind {
	return []Kind{I, X, Y, Z, H, S, T, RX, RY, RZ, CNOT, CZ, SWAP, CCX}
}
