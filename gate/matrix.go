package gate

import "math/cmplx"

// Matrix is a dense square complex matrix, row-major.
type Matrix [][]complex128

// Identity returns a fresh dim×dim identity matrix.
func Identity(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]complex128, dim)
		m[i][i] = 1
	}
	return m
}

// Dim returns the matrix dimension (number of rows).
func (m Matrix) Dim() int {
	return len(m)
}

// Dagger returns the conjugate transpose as a fresh matrix.
func (m Matrix) Dagger() Matrix {
	dim := len(m)
	d := make(Matrix, dim)
	for i := 0; i < dim; i++ {
		d[i] = make([]complex128, dim)
		for j := 0; j < dim; j++ {
			d[i][j] = cmplx.Conj(m[j][i])
		}
	}
	return d
}

// Mul returns the matrix product m·o as a fresh matrix.
func (m Matrix) Mul(o Matrix) Matrix {
	dim := len(m)
	p := make(Matrix, dim)
	for i := 0; i < dim; i++ {
		p[i] = make([]complex128, dim)
		for k := 0; k < dim; k++ {
			if m[i][k] == 0 {
				continue
			}
			for j := 0; j < dim; j++ {
				p[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return p
}

// IsUnitary reports whether ‖m·m† − I‖_∞ < tol.
func (m Matrix) IsUnitary(tol float64) bool {
	prod := m.Mul(m.Dagger())
	dim := len(m)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(prod[i][j]-want) >= tol {
				return false
			}
		}
	}
	return true
}

// Equal reports whether every entry of m and o agrees within tol.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Copy returns a deep copy of the matrix.
func (m Matrix) Copy() Matrix {
	c := make(Matrix, len(m))
	for i := range m {
		c[i] = make([]complex128, len(m[i]))
		copy(c[i], m[i])
	}
	return c
}
