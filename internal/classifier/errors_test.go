package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

var objectives = map[string]func(*tensor.Matrix, *tensor.Matrix, []int, float64) (float64, *tensor.Matrix, error){
	"SoftmaxLossNaive":      SoftmaxLossNaive,
	"SoftmaxLossVectorized": SoftmaxLossVectorized,
	"SVMLossVectorized":     SVMLossVectorized,
}

func TestObjectives_FeatureDimensionMismatch(t *testing.T) {
	w := tensor.Zeros(3, 2) // 2 features
	x := tensor.Zeros(3, 4) // 3 features

	for name, fn := range objectives {
		_, grad, err := fn(w, x, []int{0, 1, 2, 0}, 0)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrShapeMismatch), name)
		assert.Nil(t, grad, name)
	}
}

func TestObjectives_LabelCountMismatch(t *testing.T) {
	w := tensor.Zeros(3, 2)
	x := tensor.Zeros(2, 4)

	for name, fn := range objectives {
		_, _, err := fn(w, x, []int{0, 1}, 0)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrShapeMismatch), name)
	}
}

func TestObjectives_LabelOutOfRange(t *testing.T) {
	w := tensor.Zeros(3, 2)
	x := tensor.Zeros(2, 2)

	for name, fn := range objectives {
		_, _, err := fn(w, x, []int{0, 3}, 0)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidLabel), name)

		_, _, err = fn(w, x, []int{-1, 0}, 0)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidLabel), name)
	}
}

func TestObjectives_NegativeReg(t *testing.T) {
	w := tensor.Zeros(3, 2)
	x := tensor.Zeros(2, 2)

	for name, fn := range objectives {
		_, _, err := fn(w, x, []int{0, 1}, -0.1)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrNegativeReg), name)
	}
}
