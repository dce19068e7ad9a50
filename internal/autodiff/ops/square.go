package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// SquareOp represents the square operation: y = x².
//
// Backward pass:
//   - d(x²)/dx = 2x
//   - grad_input = grad_output * 2x
type SquareOp[T scalar.Float] struct {
	input *T // x, nil until Forward
}

// NewSquare creates a new SquareOp.
func NewSquare[T scalar.Float]() *SquareOp[T] {
	return &SquareOp[T]{}
}

// Name returns "square".
func (op *SquareOp[T]) Name() string {
	return "square"
}

// Forward computes x².
func (op *SquareOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(x.Data * x.Data)
}

// Backward computes input gradient for square.
func (op *SquareOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return gy * 2 * x, nil
}
