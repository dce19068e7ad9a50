package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward:
//
//	∂L/∂x = ∂L/∂y * (1 - tanh²(x))
type TanhOp[T scalar.Float] struct {
	input *T
}

// NewTanh creates a new tanh operation.
func NewTanh[T scalar.Float]() *TanhOp[T] {
	return &TanhOp[T]{}
}

// Name returns "tanh".
func (op *TanhOp[T]) Name() string {
	return "tanh"
}

// Forward computes tanh(x).
func (op *TanhOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Tanh(float64(x.Data))))
}

// Backward computes gy * (1 - tanh²(x)).
func (op *TanhOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	y := math.Tanh(float64(x))
	return gy * T(1-y*y), nil
}
