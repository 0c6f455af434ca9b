package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// Sum returns the sum of all elements.
func Sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

// Max returns the maximum element.
// Panics on an empty slice (programmer error).
func Max(xs []float64) float64 {
	return floats.Max(xs)
}

// SumSquares returns the sum of squared elements of m
// (the squared Frobenius norm).
func SumSquares(m *tensor.Matrix) float64 {
	d := m.Data()
	return floats.Dot(d, d)
}

// Scale multiplies every element of m by s in place.
func Scale(m *tensor.Matrix, s float64) {
	floats.Scale(s, m.Data())
}

// AddScaled adds s * b to a in place: a += s * b.
// Panics if shapes differ.
func AddScaled(a *tensor.Matrix, s float64, b *tensor.Matrix) {
	if !a.Shape().Equal(b.Shape()) {
		panic("addscaled: shape mismatch")
	}
	floats.AddScaled(a.Data(), s, b.Data())
}
