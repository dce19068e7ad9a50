package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// RsqrtOp represents the reciprocal square root operation: y = 1/sqrt(x).
//
// Backward pass:
//   - d(1/sqrt(x))/dx = -0.5 * x^(-3/2) = -0.5 * y^3
//   - grad_input = grad_output * (-0.5) * y^3
type RsqrtOp[T scalar.Float] struct {
	input *T
}

// NewRsqrt creates a new RsqrtOp.
func NewRsqrt[T scalar.Float]() *RsqrtOp[T] {
	return &RsqrtOp[T]{}
}

// Name returns "rsqrt".
func (op *RsqrtOp[T]) Name() string {
	return "rsqrt"
}

// Forward computes 1/sqrt(x).
func (op *RsqrtOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(1 / math.Sqrt(float64(x.Data))))
}

// Backward computes input gradient for rsqrt. Assumes x > 0.
func (op *RsqrtOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	y := 1 / math.Sqrt(float64(x))
	return gy * T(-0.5*y*y*y), nil
}
