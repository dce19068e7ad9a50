// Package ops defines the Operation contract and its scalar implementations.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computes the output and retains the input
//   - Backward pass: multiplies an upstream gradient by the local derivative
//     evaluated at the retained input
//
// An operation keeps a single retained-input slot. Every Forward call
// overwrites it, so Backward always reflects the last Forward call made on
// that instance. Reusing one instance at two positions of a chain therefore
// yields gradients for the later position only; use one instance per position.
//
// Supported operations:
//   - Square: y = x², dy/dx = 2x
//   - Exp: y = exp(x), dy/dx = exp(x)
//   - Log: y = ln(x), dy/dx = 1/x
//   - Sin: y = sin(x), dy/dx = cos(x)
//   - Cos: y = cos(x), dy/dx = -sin(x)
//   - Tanh: y = tanh(x), dy/dx = 1 - tanh²(x)
//   - Sigmoid: y = 1/(1+exp(-x)), dy/dx = y(1-y)
//   - Sqrt: y = sqrt(x), dy/dx = 1/(2 sqrt(x))
//   - Rsqrt: y = 1/sqrt(x), dy/dx = -0.5 y³
//   - ReLU: y = max(0, x), dy/dx = 1 if x > 0, else 0
//   - SiLU: y = x sigmoid(x), dy/dx = s(1 + x(1-s))
package ops

import (
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/pkg/errors"
)

var (
	// ErrBackwardBeforeForward is returned by Backward on an operation that
	// has never completed a Forward call.
	ErrBackwardBeforeForward = errors.New("backward called before forward")

	// ErrUnknownOperation is returned by New for names with no registered operation.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation represents a differentiable scalar function with one input.
type Operation[T scalar.Float] interface {
	// Name returns the registry name of the operation, e.g. "square".
	Name() string

	// Forward computes the output for x and retains x for Backward.
	// The returned variable has no gradient.
	Forward(x scalar.Variable[T]) scalar.Variable[T]

	// Backward returns gy multiplied by the local derivative at the retained input.
	// It does not modify the operation, so repeated calls with the same gy agree.
	//
	// Example for Square after Forward(3):
	//   gy: 1
	//   returns: 6
	Backward(gy T) (T, error)
}

// retained returns the value held in an operation's input slot.
func retained[T scalar.Float](name string, input *T) (T, error) {
	if input == nil {
		var zero T
		return zero, errors.Wrapf(ErrBackwardBeforeForward, "%s", name)
	}
	return *input, nil
}

// retain copies x into a fresh slot so later writes never alias earlier ones.
func retain[T scalar.Float](x T) *T {
	return &x
}
