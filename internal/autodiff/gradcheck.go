package autodiff

import (
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// GradCheck compares op's analytic derivative at x with NumericalDiff.
//
// The analytic derivative is taken first, since NumericalDiff overwrites the
// retained input. It returns an error wrapping ErrGradientMismatch when the
// two differ by more than tol, or when either derivative is NaN or infinite.
func GradCheck[T scalar.Float](op ops.Operation[T], x scalar.Variable[T], eps, tol T) error {
	op.Forward(x)
	analytic, err := op.Backward(1)
	if err != nil {
		return err
	}

	numerical := NumericalDiff(op, x, eps)
	diff := math.Abs(float64(analytic - numerical))
	klog.V(2).Infof("gradcheck %s at %g: analytic=%g numerical=%g diff=%g", op.Name(), x.Data, analytic, numerical, diff)

	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return errors.Wrapf(ErrGradientMismatch, "%s at %g: non-finite derivative (analytic %g, numerical %g)",
			op.Name(), x.Data, analytic, numerical)
	}
	if diff > float64(tol) {
		return errors.Wrapf(ErrGradientMismatch, "%s at %g: analytic %g, numerical %g (diff %g > %g)",
			op.Name(), x.Data, analytic, numerical, diff, tol)
	}
	return nil
}
