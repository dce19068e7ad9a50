// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Operations retain the input of their last Forward call and multiply an
// upstream gradient by their local derivative on Backward. Gradients are
// propagated by calling Backward in reverse order of the forward pass, either
// by hand or with a Chain.
//
// Example:
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/scalar"
//	)
//
//	func main() {
//	    chain := autodiff.NewChain[float64](
//	        autodiff.NewSquare[float64](),
//	        autodiff.NewExp[float64](),
//	        autodiff.NewSquare[float64](),
//	    )
//	    g, err := chain.Gradient(scalar.New(0.5), 1) // 2 * exp(0.5)
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Errors returned by operations and chains.
var (
	ErrBackwardBeforeForward = ops.ErrBackwardBeforeForward
	ErrUnknownOperation      = ops.ErrUnknownOperation
	ErrChainLength           = autodiff.ErrChainLength
	ErrGradientMismatch      = autodiff.ErrGradientMismatch
)

// Operation is a differentiable scalar function with a single retained input.
type Operation[T scalar.Float] = ops.Operation[T]

// Chain is a fixed sequence of operations applied left to right.
type Chain[T scalar.Float] = autodiff.Chain[T]

// NewChain creates a chain from operations in execution order.
func NewChain[T scalar.Float](operations ...Operation[T]) *Chain[T] {
	return autodiff.NewChain(operations...)
}

// NewOperation creates an operation by name (see OperationNames).
func NewOperation[T scalar.Float](name string) (Operation[T], error) {
	return ops.New[T](name)
}

// OperationNames lists the names accepted by NewOperation.
func OperationNames() []string {
	return ops.Names()
}

// NewSquare creates y = x².
func NewSquare[T scalar.Float]() Operation[T] { return ops.NewSquare[T]() }

// NewExp creates y = exp(x).
func NewExp[T scalar.Float]() Operation[T] { return ops.NewExp[T]() }

// NewLog creates y = ln(x).
func NewLog[T scalar.Float]() Operation[T] { return ops.NewLog[T]() }

// NewSin creates y = sin(x).
func NewSin[T scalar.Float]() Operation[T] { return ops.NewSin[T]() }

// NewCos creates y = cos(x).
func NewCos[T scalar.Float]() Operation[T] { return ops.NewCos[T]() }

// NewTanh creates y = tanh(x).
func NewTanh[T scalar.Float]() Operation[T] { return ops.NewTanh[T]() }

// NewSigmoid creates y = 1 / (1 + exp(-x)).
func NewSigmoid[T scalar.Float]() Operation[T] { return ops.NewSigmoid[T]() }

// NewSqrt creates y = sqrt(x).
func NewSqrt[T scalar.Float]() Operation[T] { return ops.NewSqrt[T]() }

// NewRsqrt creates y = 1/sqrt(x).
func NewRsqrt[T scalar.Float]() Operation[T] { return ops.NewRsqrt[T]() }

// NewReLU creates y = max(0, x).
func NewReLU[T scalar.Float]() Operation[T] { return ops.NewReLU[T]() }

// NewSiLU creates y = x * sigmoid(x).
func NewSiLU[T scalar.Float]() Operation[T] { return ops.NewSiLU[T]() }

// NumericalDiff estimates the derivative of op at x by central differences.
// It leaves op retaining x+eps.
func NumericalDiff[T scalar.Float](op Operation[T], x scalar.Variable[T], eps T) T {
	return autodiff.NumericalDiff(op, x, eps)
}

// GradCheck compares op's analytic derivative at x against NumericalDiff.
func GradCheck[T scalar.Float](op Operation[T], x scalar.Variable[T], eps, tol T) error {
	return autodiff.GradCheck(op, x, eps, tol)
}
