package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward: ∂L/∂x = -∂L/∂y * sin(x).
type CosOp[T scalar.Float] struct {
	input *T
}

// NewCos creates a new cosine operation.
func NewCos[T scalar.Float]() *CosOp[T] {
	return &CosOp[T]{}
}

// Name returns "cos".
func (op *CosOp[T]) Name() string {
	return "cos"
}

// Forward computes cos(x).
func (op *CosOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Cos(float64(x.Data))))
}

// Backward computes -gy * sin(x).
func (op *CosOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return -gy * T(math.Sin(float64(x))), nil
}
