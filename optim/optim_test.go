package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfw-ml/sfw/nn"
	"github.com/sfw-ml/sfw/optim"
	"github.com/sfw-ml/sfw/tensor"
)

// TestFrankWolfeL1_MinimizesQuadraticOnBall drives the public API end to
// end: minimize f(x) = 0.5*||x - c||^2 with c outside the kappa-ball.
// The constrained minimum lies on the ball boundary, and the 2/(k+2)
// schedule should get close to it.
func TestFrankWolfeL1_MinimizesQuadraticOnBall(t *testing.T) {
	c := []float64{4, 0}
	const kappa = 1.0

	x := tensor.Zeros(tensor.Shape{2})
	p := nn.NewParam("x", x)

	opt, err := optim.NewFrankWolfeL1([]*nn.Param{p}, optim.FrankWolfeConfig{Kappa: kappa})
	require.NoError(t, err)

	for k := 0; k < 500; k++ {
		grad := tensor.Zeros(tensor.Shape{2})
		for i := range c {
			grad.Set(i, x.At(i)-c[i])
		}
		p.SetGrad(grad)
		_, err := opt.Step(nil)
		require.NoError(t, err)
		opt.ZeroGrad()
	}

	// Constrained optimum is [kappa, 0].
	assert.InDelta(t, kappa, x.At(0), 1e-2)
	assert.InDelta(t, 0, x.At(1), 1e-2)
}

// TestSGDL1_ShrinksTowardZero checks that the L1 penalty drives an
// otherwise unconstrained coordinate toward zero.
func TestSGDL1_ShrinksTowardZero(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1}, tensor.Shape{1})
	require.NoError(t, err)
	p := nn.NewParam("x", x)

	opt, err := optim.NewSGDL1([]*nn.Param{p}, optim.SGDL1Config{LR: 0.1, Lambda: 0.5})
	require.NoError(t, err)

	// Zero data gradient: only the subgradient of lambda*|x| acts.
	for i := 0; i < 10; i++ {
		p.SetGrad(tensor.Zeros(tensor.Shape{1}))
		_, err := opt.Step(nil)
		require.NoError(t, err)
		opt.ZeroGrad()
	}
	assert.Less(t, math.Abs(x.At(0)), 1.0)
}

func TestErrors_ExposedThroughFacade(t *testing.T) {
	p := nn.NewParam("x", tensor.Zeros(tensor.Shape{1}))

	_, err := optim.NewFrankWolfeL1([]*nn.Param{p}, optim.FrankWolfeConfig{Kappa: -1})
	var cfgErr *optim.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	_, err = optim.LMOL1(tensor.Zeros(tensor.Shape{1}), 0)
	var shapeErr *optim.ShapeError
	require.ErrorAs(t, err, &shapeErr)
}
