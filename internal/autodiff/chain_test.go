package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainRuleAtHalf is the central-difference estimate (eps=1e-4) of
// d/dx exp(x²)² at x=0.5.
const chainRuleAtHalf = 3.2974426293330694

func squareExpSquare() *autodiff.Chain[float64] {
	return autodiff.NewChain[float64](ops.NewSquare[float64](), ops.NewExp[float64](), ops.NewSquare[float64]())
}

func grads[T scalar.Float](t *testing.T, vars []scalar.Variable[T]) []T {
	t.Helper()
	out := make([]T, len(vars))
	for i, v := range vars {
		g, ok := v.Grad()
		require.True(t, ok, "variable %d has no gradient", i)
		out[i] = g
	}
	return out
}

// TestManualChain runs the forward and reverse passes by hand, one operation
// at a time.
func TestManualChain(t *testing.T) {
	sq1, ex, sq2 := ops.NewSquare[float64](), ops.NewExp[float64](), ops.NewSquare[float64]()

	x := scalar.New(0.5)
	a := sq1.Forward(x)
	b := ex.Forward(a)
	y := sq2.Forward(b)

	assert.False(t, a.HasGrad())
	assert.False(t, b.HasGrad())
	assert.False(t, y.HasGrad())

	y.SetGrad(1.0)

	gy, _ := y.Grad()
	gb, err := sq2.Backward(gy)
	require.NoError(t, err)
	b.SetGrad(gb)

	ga, err := ex.Backward(gb)
	require.NoError(t, err)
	a.SetGrad(ga)

	gx, err := sq1.Backward(ga)
	require.NoError(t, err)
	x.SetGrad(gx)

	got, ok := x.Grad()
	require.True(t, ok)
	assert.InDelta(t, 2*math.Exp(0.5), got, 1e-10)
	assert.InDelta(t, chainRuleAtHalf, got, 1e-6)
}

func TestChain_Forward(t *testing.T) {
	chain := squareExpSquare()
	vars := chain.Forward(scalar.New(2.0))

	require.Len(t, vars, chain.Len()+1)
	assert.Equal(t, 2.0, vars[0].Data)
	assert.Equal(t, 4.0, vars[1].Data)
	assert.InDelta(t, math.Pow(math.Exp(2.0*2.0), 2), vars[3].Data, 1e-10)
	for _, v := range vars {
		assert.False(t, v.HasGrad())
	}
}

func TestChain_Backward(t *testing.T) {
	chain := squareExpSquare()
	vars := chain.Forward(scalar.New(0.5))
	require.NoError(t, chain.Backward(vars, 1.0))

	want := []float64{2 * math.Exp(0.5), 2 * math.Exp(0.5), 2 * math.Exp(0.25), 1}
	if diff := cmp.Diff(want, grads(t, vars), cmpopts.EquateApprox(0, 1e-10)); diff != "" {
		t.Errorf("gradients mismatch (-want +got):\n%s", diff)
	}
}

func TestChain_WeightedSeed(t *testing.T) {
	chain := squareExpSquare()

	unit, err := chain.Gradient(scalar.New(0.5), 1)
	require.NoError(t, err)
	weighted, err := chain.Gradient(scalar.New(0.5), 3)
	require.NoError(t, err)

	assert.InDelta(t, 3*unit, weighted, 1e-10)
}

func TestChain_Gradient(t *testing.T) {
	g, err := squareExpSquare().Gradient(scalar.New(0.5), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Exp(0.5), g, 1e-10)
	assert.InDelta(t, chainRuleAtHalf, g, 1e-6)
}

func TestChain_BackwardLengthMismatch(t *testing.T) {
	chain := squareExpSquare()
	vars := chain.Forward(scalar.New(1.0))

	err := chain.Backward(vars[1:], 1)
	assert.ErrorIs(t, err, autodiff.ErrChainLength)
}

func TestChain_BackwardBeforeForward(t *testing.T) {
	chain := squareExpSquare()
	vars := []scalar.Variable[float64]{scalar.New(1.0), scalar.New(1.0), scalar.New(1.0), scalar.New(1.0)}

	err := chain.Backward(vars, 1)
	require.ErrorIs(t, err, ops.ErrBackwardBeforeForward)
	assert.Contains(t, err.Error(), "step 3 (square)")
}

func TestChain_Empty(t *testing.T) {
	chain := autodiff.NewChain[float64]()
	g, err := chain.Gradient(scalar.New(7.0), 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, g)
}

// TestChain_SharedInstance shows the single-slot policy: one instance used at
// two positions retains only the later input.
func TestChain_SharedInstance(t *testing.T) {
	sq := ops.NewSquare[float64]()
	shared := autodiff.NewChain[float64](sq, sq)
	distinct := autodiff.NewChain[float64](ops.NewSquare[float64](), ops.NewSquare[float64]())

	x := scalar.New(3.0)
	good, err := distinct.Gradient(x, 1)
	require.NoError(t, err)
	assert.Equal(t, 4*27.0, good) // d/dx x⁴ = 4x³

	bad, err := shared.Gradient(x, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*9.0*2*9.0, bad) // both steps evaluate 2x at x=9
	assert.NotEqual(t, good, bad)
}

func TestChain_Float32(t *testing.T) {
	chain := autodiff.NewChain[float32](ops.NewSquare[float32](), ops.NewExp[float32](), ops.NewSquare[float32]())
	g, err := chain.Gradient(scalar.New(float32(0.5)), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Exp(0.5), float64(g), 1e-5)
}

func TestChain_Ops(t *testing.T) {
	chain := squareExpSquare()
	list := chain.Ops()
	require.Len(t, list, 3)
	assert.Equal(t, "exp", list[1].Name())

	list[0] = ops.NewExp[float64]()
	assert.Equal(t, "square", chain.Ops()[0].Name())
}

func TestChain_Operation(t *testing.T) {
	op := squareExpSquare().Operation()
	assert.Equal(t, "chain(square,exp,square)", op.Name())

	_, err := op.Backward(1)
	require.ErrorIs(t, err, ops.ErrBackwardBeforeForward)

	y := op.Forward(scalar.New(0.5))
	assert.InDelta(t, math.Exp(0.5), y.Data, 1e-12)
	assert.False(t, y.HasGrad())

	first, err := op.Backward(1)
	require.NoError(t, err)
	second, err := op.Backward(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 2*math.Exp(0.5), first, 1e-10)
}
