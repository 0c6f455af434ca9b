package classifier

import (
	"errors"
	"fmt"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// Precondition failures surfaced by every objective. Each check runs
// before any computation; there is no partial result on error.
var (
	// ErrShapeMismatch reports inconsistent W/X/y dimensions.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidLabel reports a label outside [0, classes).
	ErrInvalidLabel = errors.New("invalid label")

	// ErrNegativeReg reports a negative regularization strength.
	ErrNegativeReg = errors.New("negative regularization strength")
)

// validateInputs checks the shared preconditions of all objectives and
// returns (classes, features, samples) on success.
func validateInputs(w, x *tensor.Matrix, y []int, reg float64) (int, int, int, error) {
	k, d := w.Rows(), w.Cols()
	n := x.Cols()

	if x.Rows() != d {
		return 0, 0, 0, fmt.Errorf("%w: weights are [%d, %d] but batch has %d features",
			ErrShapeMismatch, k, d, x.Rows())
	}
	if len(y) != n {
		return 0, 0, 0, fmt.Errorf("%w: batch has %d samples but %d labels",
			ErrShapeMismatch, n, len(y))
	}
	for i, label := range y {
		if label < 0 || label >= k {
			return 0, 0, 0, fmt.Errorf("%w: label %d at index %d (classes: %d)",
				ErrInvalidLabel, label, i, k)
		}
	}
	if reg < 0 {
		return 0, 0, 0, fmt.Errorf("%w: %g", ErrNegativeReg, reg)
	}
	return k, d, n, nil
}
