package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward: ∂L/∂x = ∂L/∂y * cos(x).
type SinOp[T scalar.Float] struct {
	input *T
}

// NewSin creates a new sine operation.
func NewSin[T scalar.Float]() *SinOp[T] {
	return &SinOp[T]{}
}

// Name returns "sin".
func (op *SinOp[T]) Name() string {
	return "sin"
}

// Forward computes sin(x).
func (op *SinOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Sin(float64(x.Data))))
}

// Backward computes gy * cos(x).
func (op *SinOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return gy * T(math.Cos(float64(x))), nil
}
