package gate

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryBuiltinGateIsUnitary(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			m := k.Matrix(0.7321)
			require.NotNil(t, m)
			assert.True(t, m.IsUnitary(1e-10), "‖U·U†−I‖ must be below 1e-10 for %s", k)
		})
	}
}

func TestArityMatchesMatrixDimension(t *testing.T) {
	for _, k := range Kinds() {
		m := k.Matrix(1.5)
		assert.Equal(t, 1<<k.Arity(), m.Dim(), "dim must be 2^arity for %s", k)
	}
}

func TestMatrixIsFreshPerCall(t *testing.T) {
	a := H.Matrix(0)
	b := H.Matrix(0)
	a[0][0] = 42
	assert.NotEqual(t, a[0][0], b[0][0], "mutating one call's matrix must not affect another")

	r1 := RZ.Matrix(0.5)
	r2 := RZ.Matrix(0.5)
	r1[1][1] = 0
	assert.NotEqual(t, r1[1][1], r2[1][1])
}

func TestRotationBy2PiIsMinusIdentity(t *testing.T) {
	// Spin-1/2 convention: a full 2π rotation picks up a global phase of −1.
	minusI := Matrix{{-1, 0}, {0, -1}}
	for _, k := range []Kind{RX, RY, RZ} {
		m := k.Matrix(2 * math.Pi)
		assert.True(t, m.Equal(minusI, 1e-12), "%s(2π) must equal −I", k)
	}
}

func TestRotationByZeroIsIdentity(t *testing.T) {
	for _, k := range []Kind{RX, RY, RZ} {
		assert.True(t, k.Matrix(0).Equal(Identity(2), 1e-12), "%s(0) must equal I", k)
	}
}

func TestRXHalfPi(t *testing.T) {
	m := RX.Matrix(math.Pi)
	// RX(π) = −iX up to numerical tolerance.
	want := Matrix{{0, -1i}, {-1i, 0}}
	assert.True(t, m.Equal(want, 1e-12))
}

func TestCNOTFlipsTargetWhenControlSet(t *testing.T) {
	m := CNOT.Matrix(0)
	// |10⟩ → |11⟩ and |11⟩ → |10⟩ with the first listed qubit as control.
	assert.Equal(t, complex128(1), m[3][2])
	assert.Equal(t, complex128(1), m[2][3])
	assert.Equal(t, complex128(1), m[0][0])
	assert.Equal(t, complex128(1), m[1][1])
}

func TestToffoliFlipsOnlyDoubleControlled(t *testing.T) {
	m := CCX.Matrix(0)
	for i := 0; i < 6; i++ {
		assert.Equal(t, complex128(1), m[i][i], "basis %d untouched", i)
	}
	assert.Equal(t, complex128(1), m[6][7])
	assert.Equal(t, complex128(1), m[7][6])
}

func TestDagger(t *testing.T) {
	s := S.Matrix(0)
	sd := s.Dagger()
	assert.Equal(t, cmplx.Conj(s[1][1]), sd[1][1])
	assert.True(t, s.Mul(sd).Equal(Identity(2), 1e-12), "S·S† must equal I")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "h", H.String())
	assert.Equal(t, "cnot", CNOT.String())
	assert.Equal(t, "ccx", CCX.String())
	assert.Equal(t, "rz", RZ.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
