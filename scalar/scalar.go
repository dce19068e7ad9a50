// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the value type used by scalargrad.
//
// Example:
//
//	x := scalar.New(0.5)
//	x.SetGrad(1)
//	g, ok := x.Grad() // 1, true
package scalar

import "github.com/born-ml/scalargrad/internal/scalar"

// Float is the constraint for supported scalar types (float32, float64).
type Float = scalar.Float

// Variable holds a scalar value and an optional gradient.
type Variable[T Float] = scalar.Variable[T]

// New creates a root variable with no gradient.
func New[T Float](data T) Variable[T] {
	return scalar.New(data)
}
