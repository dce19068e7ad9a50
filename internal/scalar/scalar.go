// Package scalar provides the value type flowing through differentiable operations.
package scalar

import "fmt"

// Float is a constraint for supported scalar data types.
type Float interface {
	~float32 | ~float64
}

// Variable holds a scalar value and an optional gradient.
//
// The gradient is absent until backpropagation assigns it. Variables are plain
// values: copying one copies both the data and the gradient slot, and two
// Variables compare equal with == when their data and gradient slots match.
type Variable[T Float] struct {
	Data T

	grad    T
	hasGrad bool
}

// New creates a root variable with no gradient.
func New[T Float](data T) Variable[T] {
	return Variable[T]{Data: data}
}

// Grad returns the gradient and whether it has been set.
func (v Variable[T]) Grad() (T, bool) {
	return v.grad, v.hasGrad
}

// HasGrad reports whether a gradient has been assigned.
func (v Variable[T]) HasGrad() bool {
	return v.hasGrad
}

// SetGrad assigns the gradient.
func (v *Variable[T]) SetGrad(g T) {
	v.grad = g
	v.hasGrad = true
}

// ClearGrad drops the gradient, returning the variable to its freshly built state.
func (v *Variable[T]) ClearGrad() {
	var zero T
	v.grad = zero
	v.hasGrad = false
}

// String returns a human-readable representation.
func (v Variable[T]) String() string {
	if !v.hasGrad {
		return fmt.Sprintf("variable(%g)", v.Data)
	}
	return fmt.Sprintf("variable(%g, grad=%g)", v.Data, v.grad)
}
