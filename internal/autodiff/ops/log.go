package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// LogOp represents the natural logarithm operation.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
type LogOp[T scalar.Float] struct {
	input *T
}

// NewLog creates a new log operation.
func NewLog[T scalar.Float]() *LogOp[T] {
	return &LogOp[T]{}
}

// Name returns "log".
func (op *LogOp[T]) Name() string {
	return "log"
}

// Forward computes log(x).
func (op *LogOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.input = retain(x.Data)
	return scalar.New(T(math.Log(float64(x.Data))))
}

// Backward computes the gradient with respect to input.
//
// Note: This assumes input > 0 (log is only defined for positive values).
func (op *LogOp[T]) Backward(gy T) (T, error) {
	x, err := retained(op.Name(), op.input)
	if err != nil {
		return 0, err
	}
	return gy / x, nil
}
