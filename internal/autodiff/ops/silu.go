package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// SiLUOp represents the SiLU (Swish) activation operation: y = x * sigmoid(x).
//
// Backward:
//
//	∂L/∂x = ∂L/∂y * s * (1 + x * (1 - s)), where s = sigmoid(x)
type SiLUOp[T scalar.Float] struct {
	input *T
}

// NewSiLU creates a new SiLU operation.
func NewSiLU[T scalar.Float]() *SiLUOp[T] {
	return &SiLUOp[T]{}
}

// Name returns "silu".
func (op *SiLUOp[T]) Name() string {
	return "silu"
}

// Forward computes x * sigmoid(x).
func (op *SiLUOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	xf := float64(x.Data)
	return scalar.New(T(xf * sigmoid(xf)))
}

// Backward computes the SiLU gradient.
func (op *SiLUOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	xf := float64(x)
	s := sigmoid(xf)
	return gy * T(s*(1+xf*(1-s))), nil
}
