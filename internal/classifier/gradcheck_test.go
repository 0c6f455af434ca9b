package classifier

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/gradcheck"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// checkGradient compares the analytic gradient's projection onto a random
// direction against a central-difference estimate of the loss.
func checkGradient(t *testing.T, name string,
	fn func(*tensor.Matrix, *tensor.Matrix, []int, float64) (float64, *tensor.Matrix, error),
	w, x *tensor.Matrix, y []int, reg float64, rng *rand.Rand,
) {
	t.Helper()

	_, grad, err := fn(w, x, y, reg)
	require.NoError(t, err, name)

	loss := func(m *tensor.Matrix) float64 {
		l, _, lerr := fn(m, x, y, reg)
		require.NoError(t, lerr, name)
		return l
	}

	for trial := 0; trial < 3; trial++ {
		d := gradcheck.RandomDirection(w, rng)
		numeric := gradcheck.Directional(loss, w, d, 1e-6)
		analytic := gradcheck.Dot(grad, d)

		denom := math.Max(math.Abs(numeric), math.Abs(analytic))
		require.Positive(t, denom, "%s: degenerate direction", name)
		assert.Less(t, math.Abs(numeric-analytic)/denom, 1e-4,
			"%s trial %d: numeric %g vs analytic %g", name, trial, numeric, analytic)
	}
}

func TestSoftmaxLoss_GradientCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	w, x, y := randomProblem(t, 5, 8, 12, rng)

	checkGradient(t, "softmax/vectorized", SoftmaxLossVectorized, w, x, y, 0, rng)
	checkGradient(t, "softmax/vectorized+reg", SoftmaxLossVectorized, w, x, y, 0.5, rng)
	checkGradient(t, "softmax/naive", SoftmaxLossNaive, w, x, y, 0.5, rng)
}

func TestSVMLoss_GradientCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	w, x, y := randomProblem(t, 5, 8, 12, rng)

	checkGradient(t, "hinge/vectorized", SVMLossVectorized, w, x, y, 0, rng)
	checkGradient(t, "hinge/vectorized+reg", SVMLossVectorized, w, x, y, 0.5, rng)
}
