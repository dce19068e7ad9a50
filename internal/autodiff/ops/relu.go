package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The derivative at exactly 0 is taken as 0.
type ReLUOp[T scalar.Float] struct {
	input *T
}

// NewReLU creates a new ReLUOp.
func NewReLU[T scalar.Float]() *ReLUOp[T] {
	return &ReLUOp[T]{}
}

// Name returns "relu".
func (op *ReLUOp[T]) Name() string {
	return "relu"
}

// Forward computes max(0, x).
func (op *ReLUOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	if x.Data > 0 {
		return scalar.New(x.Data)
	}
	return scalar.New(T(0))
}

// Backward passes gy through where the retained input was positive.
func (op *ReLUOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	if x > 0 {
		return gy, nil
	}
	return 0, nil
}
