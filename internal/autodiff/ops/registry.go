package ops

import (
	"sort"

	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/pkg/errors"
)

// constructors maps each registry name to the constructor of its operation.
// It is the only list of operation names; New and Names both read it.
func constructors[T scalar.Float]() map[string]func() Operation[T] {
	return map[string]func() Operation[T]{
		"square":  func() Operation[T] { return NewSquare[T]() },
		"exp":     func() Operation[T] { return NewExp[T]() },
		"log":     func() Operation[T] { return NewLog[T]() },
		"sin":     func() Operation[T] { return NewSin[T]() },
		"cos":     func() Operation[T] { return NewCos[T]() },
		"tanh":    func() Operation[T] { return NewTanh[T]() },
		"sigmoid": func() Operation[T] { return NewSigmoid[T]() },
		"sqrt":    func() Operation[T] { return NewSqrt[T]() },
		"rsqrt":   func() Operation[T] { return NewRsqrt[T]() },
		"relu":    func() Operation[T] { return NewReLU[T]() },
		"silu":    func() Operation[T] { return NewSiLU[T]() },
	}
}

// New creates a fresh operation by its registry name.
func New[T scalar.Float](name string) (Operation[T], error) {
	build, ok := constructors[T]()[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", name)
	}
	return build(), nil
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	registry := constructors[float64]()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
