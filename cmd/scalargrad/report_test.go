package main

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SquareExpSquare(t *testing.T) {
	report, err := Run(config.ChainConfig{Name: "demo", Input: 0.5, Ops: []string{"square", "exp", "square"}})
	require.NoError(t, err)
	require.Len(t, report.Steps, 3)

	assert.Equal(t, config.DefaultSeed, report.Seed)
	assert.InDelta(t, 2*math.Exp(0.5), report.Gradient, 1e-10)
	assert.InDelta(t, report.Gradient, report.Numerical, 1e-6)

	last := report.Steps[2]
	assert.Equal(t, "square", last.Op)
	assert.Equal(t, 1.0, last.Grad)
	assert.InDelta(t, math.Exp(0.5), last.Output, 1e-12)

	for _, s := range report.Steps {
		assert.InDelta(t, s.Local, s.Numerical, 1e-6, s.Op)
	}
}

func TestRun_Seed(t *testing.T) {
	seed := 3.0
	report, err := Run(config.ChainConfig{Name: "w", Input: 1, Ops: []string{"sin"}, Seed: &seed})
	require.NoError(t, err)

	assert.InDelta(t, 3*math.Cos(1), report.Gradient, 1e-12)
	assert.InDelta(t, report.Gradient, report.Numerical, 1e-6)
}

func TestRun_UnknownOperation(t *testing.T) {
	_, err := Run(config.ChainConfig{Name: "bad", Ops: []string{"gelu"}})
	assert.Error(t, err)
}

func TestReport_Render(t *testing.T) {
	report, err := Run(config.ChainConfig{Name: "demo", Input: 2, Ops: []string{"square", "exp"}})
	require.NoError(t, err)

	out := report.Render()
	assert.Contains(t, out, `chain "demo"`)
	assert.Contains(t, out, "square")
	assert.Contains(t, out, "exp")
	assert.Contains(t, out, "x.grad = ")
}

func TestSplitOps(t *testing.T) {
	assert.Equal(t, []string{"square", "exp"}, splitOps(" square, exp ,"))
	assert.Nil(t, splitOps(""))
}
