package circuit

import "github.com/teranos/qsim/errors"

// Bell returns the two-qubit Bell-pair preparation circuit H(0)·CNOT(0,1).
func Bell() *Circuit {
	c, _ := New(2)
	return c.H(0).CNOT(0, 1)
}

// GHZ returns the n-qubit GHZ preparation circuit: a Hadamard on qubit 0
// followed by a CNOT chain.
func GHZ(n int) (*Circuit, error) {
	c, err := New(n)
	if err != nil {
		return nil, err
	}
	c.H(0)
	for q := 0; q < n-1; q++ {
		c.CNOT(q, q+1)
	}
	return c, nil
}

// GroverDiffusion returns the Grover diffusion operator 2|s⟩⟨s|−I on n
// qubits, decomposed into the gate set: H and X layers around a
// multi-controlled Z. The controlled Z is built from CZ (n=2) or from
// CCX conjugated by a Hadamard on the target (n=3); wider registers are
// not expressible with at most three-qubit gates.
func GroverDiffusion(n int) (*Circuit, error) {
	if n != 2 && n != 3 {
		return nil, errors.NewConfigurationError("grover diffusion supports 2 or 3 qubits, got %d", n)
	}
	c, _ := New(n)
	for q := 0; q < n; q++ {
		c.H(q)
	}
	for q := 0; q < n; q++ {
		c.X(q)
	}
	if n == 2 {
		c.CZ(0, 1)
	} else {
		c.H(2).Toffoli(0, 1, 2).H(2)
	}
	for q := 0; q < n; q++ {
		c.X(q)
	}
	for q := 0; q < n; q++ {
		c.H(q)
	}
	return c, nil
}
