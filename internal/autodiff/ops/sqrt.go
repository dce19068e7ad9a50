package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// SqrtOp represents the square root operation: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 1 / (2 * sqrt(x))
//   - grad_input = grad_output * 0.5 / sqrt(x)
type SqrtOp[T scalar.Float] struct {
	input *T
}

// NewSqrt creates a new SqrtOp.
func NewSqrt[T scalar.Float]() *SqrtOp[T] {
	return &SqrtOp[T]{}
}

// Name returns "sqrt".
func (op *SqrtOp[T]) Name() string {
	return "sqrt"
}

// Forward computes sqrt(x).
func (op *SqrtOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Sqrt(float64(x.Data))))
}

// Backward computes input gradient for sqrt. Assumes x > 0.
func (op *SqrtOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return gy * 0.5 / T(math.Sqrt(float64(x))), nil
}
