// Package gradcheck verifies analytic gradients against central-difference
// numerical estimates.
package gradcheck

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/backend/cpu"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// LossFunc evaluates a scalar loss at the given weights.
type LossFunc func(w *tensor.Matrix) float64

// Directional estimates the directional derivative of f at w along d
// using a central difference: (f(w + eps·d) - f(w - eps·d)) / (2·eps).
//
// w is not mutated; both probe points are fresh copies.
func Directional(f LossFunc, w, d *tensor.Matrix, eps float64) float64 {
	plus := w.Clone()
	cpu.AddScaled(plus, eps, d)

	minus := w.Clone()
	cpu.AddScaled(minus, -eps, d)

	return (f(plus) - f(minus)) / (2 * eps)
}

// Dot returns the projection of grad onto direction d, the analytic
// counterpart of Directional.
func Dot(grad, d *tensor.Matrix) float64 {
	return floats.Dot(grad.Data(), d.Data())
}

// RandomDirection draws a unit-norm random direction with the shape of w.
func RandomDirection(w *tensor.Matrix, rng *rand.Rand) *tensor.Matrix {
	d := tensor.Randn(w.Rows(), w.Cols(), rng)
	norm := floats.Norm(d.Data(), 2)
	cpu.Scale(d, 1/norm)
	return d
}
