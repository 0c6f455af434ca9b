package gradcheck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// For a quadratic f(w) = 0.5·Σw², the central difference is exact:
// both sides equal w·d.
func TestDirectional_Quadratic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := tensor.Randn(4, 5, rng)
	d := RandomDirection(w, rng)

	f := func(m *tensor.Matrix) float64 {
		return 0.5 * floats.Dot(m.Data(), m.Data())
	}

	numeric := Directional(f, w, d, 1e-4)
	analytic := Dot(w, d) // grad of f is w itself

	assert.InDelta(t, analytic, numeric, 1e-9)
}

func TestDirectional_DoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	w := tensor.Randn(3, 3, rng)
	before := w.Clone()

	Directional(func(m *tensor.Matrix) float64 { return m.At(0, 0) }, w, RandomDirection(w, rng), 1e-5)

	assert.Equal(t, before.Data(), w.Data())
}

func TestRandomDirection_UnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	w := tensor.Zeros(6, 7)
	d := RandomDirection(w, rng)

	assert.True(t, d.Shape().Equal(w.Shape()))
	assert.InDelta(t, 1.0, floats.Norm(d.Data(), 2), 1e-12)
}
