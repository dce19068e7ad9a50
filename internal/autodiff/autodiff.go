// Package autodiff composes scalar operations into reverse-mode differentiation.
//
// There is no computation graph. A caller applies operations left to right,
// seeds the final variable's gradient, then calls Backward on each operation
// in strict reverse order, feeding each result into the previous step:
//
//	square, exp := ops.NewSquare[float64](), ops.NewExp[float64]()
//
//	x := scalar.New(0.5)
//	a := square.Forward(x)
//	y := exp.Forward(a)
//
//	y.SetGrad(1)
//	gy, _ := y.Grad()
//	ga, _ := exp.Backward(gy)
//	a.SetGrad(ga)
//	gx, _ := square.Backward(ga)
//	x.SetGrad(gx) // dy/dx = 2x * exp(x²)
//
// Chain performs that same walk for a fixed sequence of operations, and
// NumericalDiff and GradCheck cross-check analytic backward passes against
// central finite differences.
package autodiff

import "github.com/pkg/errors"

var (
	// ErrChainLength is returned when the variables passed to Chain.Backward
	// do not match the chain's forward pass.
	ErrChainLength = errors.New("variable count does not match chain length")

	// ErrGradientMismatch is returned by GradCheck when the analytic and
	// numerical derivatives disagree beyond the tolerance.
	ErrGradientMismatch = errors.New("analytic and numerical gradients differ")
)
