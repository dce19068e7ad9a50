// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI_Chain(t *testing.T) {
	chain := autodiff.NewChain(autodiff.NewSquare[float64](), autodiff.NewExp[float64](), autodiff.NewSquare[float64]())

	vars := chain.Forward(scalar.New(2.0))
	assert.InDelta(t, math.Pow(math.Exp(4), 2), vars[3].Data, 1e-10)

	g, err := chain.Gradient(scalar.New(0.5), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Exp(0.5), g, 1e-10)
}

func TestPublicAPI_Errors(t *testing.T) {
	for _, name := range autodiff.OperationNames() {
		op, err := autodiff.NewOperation[float32](name)
		require.NoError(t, err)

		_, err = op.Backward(1)
		assert.ErrorIs(t, err, autodiff.ErrBackwardBeforeForward, name)
	}

	_, err := autodiff.NewOperation[float32]("gelu")
	assert.ErrorIs(t, err, autodiff.ErrUnknownOperation)
}

func TestPublicAPI_NumericalDiff(t *testing.T) {
	sq := autodiff.NewSquare[float64]()
	assert.InDelta(t, 4.0, autodiff.NumericalDiff(sq, scalar.New(2.0), 1e-2), 1e-2)
	assert.NoError(t, autodiff.GradCheck(autodiff.NewTanh[float64](), scalar.New(0.3), 1e-5, 1e-6))
}
