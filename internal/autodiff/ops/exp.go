package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x)
//   - grad_input = grad_output * exp(x)
type ExpOp[T scalar.Float] struct {
	input *T // x, nil until Forward
}

// NewExp creates a new ExpOp.
func NewExp[T scalar.Float]() *ExpOp[T] {
	return &ExpOp[T]{}
}

// Name returns "exp".
func (op *ExpOp[T]) Name() string {
	return "exp"
}

// Forward computes exp(x).
func (op *ExpOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Exp(float64(x.Data))))
}

// Backward computes input gradient for exp.
//
// Only the input is retained, so exp(x) is recomputed here rather than
// read back from the forward output.
func (op *ExpOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return gy * T(math.Exp(float64(x))), nil
}
