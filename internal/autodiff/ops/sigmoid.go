package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// SigmoidOp represents the logistic function: y = 1 / (1 + exp(-x)).
//
// Backward:
//
//	∂L/∂x = ∂L/∂y * y * (1 - y)
type SigmoidOp[T scalar.Float] struct {
	input *T
}

// NewSigmoid creates a new sigmoid operation.
func NewSigmoid[T scalar.Float]() *SigmoidOp[T] {
	return &SigmoidOp[T]{}
}

// Name returns "sigmoid".
func (op *SigmoidOp[T]) Name() string {
	return "sigmoid"
}

// Forward computes sigmoid(x).
func (op *SigmoidOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(sigmoid(float64(x.Data))))
}

// Backward computes gy * s * (1 - s) with s = sigmoid(x).
func (op *SigmoidOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	s := sigmoid(float64(x))
	return gy * T(s*(1-s)), nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
