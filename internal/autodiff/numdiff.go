package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// NumericalDiff estimates the derivative of op at x by central differences:
//
//	(op(x + eps) - op(x - eps)) / (2 * eps)
//
// eps must be positive. The estimate is accurate to O(eps²) and is meant as an
// oracle for Backward, not for computing gradients.
//
// NumericalDiff drives op.Forward twice, at x-eps and then at x+eps, so op's
// retained input is x+eps when it returns. Do not call Backward on op
// afterwards expecting the derivative at x.
func NumericalDiff[T scalar.Float](op ops.Operation[T], x scalar.Variable[T], eps T) T {
	y0 := op.Forward(scalar.New(x.Data - eps))
	y1 := op.Forward(scalar.New(x.Data + eps))
	return (y1.Data - y0.Data) / (2 * eps)
}
