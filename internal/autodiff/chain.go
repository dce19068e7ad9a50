package autodiff

import (
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Chain is a fixed sequence of operations applied left to right.
//
// It runs the manual backpropagation pattern for a straight line of
// operations: Forward applies each operation to the previous output, and
// Backward walks the operations in reverse, multiplying local derivatives.
// There is no branching or fan-in.
//
// Usage:
//
//	chain := NewChain[float64](ops.NewSquare[float64](), ops.NewExp[float64]())
//	vars := chain.Forward(scalar.New(0.5))
//	err := chain.Backward(vars, 1)
//	gx, _ := vars[0].Grad()
//
// Each position should hold its own operation instance: an instance used
// twice retains only its last input.
type Chain[T scalar.Float] struct {
	ops []ops.Operation[T] // Operations in execution order
}

// NewChain creates a chain from operations in execution order.
func NewChain[T scalar.Float](operations ...ops.Operation[T]) *Chain[T] {
	c := &Chain[T]{
		ops: make([]ops.Operation[T], len(operations)),
	}
	copy(c.ops, operations)
	return c
}

// Len returns the number of operations.
func (c *Chain[T]) Len() int {
	return len(c.ops)
}

// Ops returns the operations in execution order.
func (c *Chain[T]) Ops() []ops.Operation[T] {
	out := make([]ops.Operation[T], len(c.ops))
	copy(out, c.ops)
	return out
}

// Forward applies every operation in order starting from x.
// It returns Len()+1 variables: x followed by each operation's output.
func (c *Chain[T]) Forward(x scalar.Variable[T]) []scalar.Variable[T] {
	vars := make([]scalar.Variable[T], 0, len(c.ops)+1)
	vars = append(vars, x)
	for _, op := range c.ops {
		x = op.Forward(x)
		vars = append(vars, x)
	}
	return vars
}

// Backward propagates seed from the last variable back to the first.
//
// vars must be the slice returned by the most recent Forward call. The last
// variable's gradient is set to seed, then for k = n..1 the gradient of
// vars[k-1] is op_k.Backward(grad of vars[k]).
func (c *Chain[T]) Backward(vars []scalar.Variable[T], seed T) error {
	if len(vars) != len(c.ops)+1 {
		return errors.Wrapf(ErrChainLength, "got %d variables for %d operations", len(vars), len(c.ops))
	}

	n := len(c.ops)
	vars[n].SetGrad(seed)

	for k := n; k >= 1; k-- {
		op := c.ops[k-1]
		gy, _ := vars[k].Grad()

		gx, err := op.Backward(gy)
		if err != nil {
			return errors.Wrapf(err, "step %d (%s)", k, op.Name())
		}
		klog.V(2).Infof("chain backward step %d (%s): grad %g -> %g", k, op.Name(), gy, gx)
		vars[k-1].SetGrad(gx)
	}
	return nil
}

// Gradient runs Forward and Backward and returns the gradient of x.
func (c *Chain[T]) Gradient(x scalar.Variable[T], seed T) (T, error) {
	vars := c.Forward(x)
	if err := c.Backward(vars, seed); err != nil {
		return 0, err
	}
	g, _ := vars[0].Grad()
	return g, nil
}

// Operation returns the whole chain as a single Operation.
//
// Forward runs the chain and retains its variables; Backward propagates gy
// through a copy of them, so the composite keeps the same contract as any
// single operation. This lets NumericalDiff and GradCheck treat a chain as
// one function.
func (c *Chain[T]) Operation() ops.Operation[T] {
	return &chainOp[T]{chain: c}
}

type chainOp[T scalar.Float] struct {
	chain *Chain[T]
	vars  []scalar.Variable[T] // nil until Forward
}

func (op *chainOp[T]) Name() string {
	names := make([]string, len(op.chain.ops))
	for i, o := range op.chain.ops {
		names[i] = o.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (op *chainOp[T]) Forward(x scalar.Variable[T]) scalar.Variable[T] {
	op.vars = op.chain.Forward(x)
	return scalar.New(op.vars[len(op.vars)-1].Data)
}

func (op *chainOp[T]) Backward(gy T) (T, error) {
	if op.vars == nil {
		return 0, errors.Wrapf(ops.ErrBackwardBeforeForward, "%s", op.Name())
	}

	vars := make([]scalar.Variable[T], len(op.vars))
	copy(vars, op.vars)
	if err := op.chain.Backward(vars, gy); err != nil {
		return 0, err
	}
	g, _ := vars[0].Grad()
	return g, nil
}
