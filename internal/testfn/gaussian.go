package testfn

import (
	"math"

	"github.com/gosolve/optbench/pkg/utils"
)

// TrueDoubleGaussianParams are the mixture parameters [A1, mu1, sigma1,
// A2, mu2, sigma2] the noisy fitting samples are generated from. They
// double as the reference solution for the DoubleGaussian test case.
var TrueDoubleGaussianParams = []float64{1.5, -0.8, 0.6, 1.2, 1.0, 0.4}

// DefaultFittingSeed makes the synthetic dataset reproducible across
// runs and across the harnesses in other languages this suite is
// compared with.
const DefaultFittingSeed int64 = 42

const (
	fittingSamples = 500
	fittingXMin    = -3.0
	fittingXMax    = 3.0
	// noiseAmplitude scales the multiplicative noise to 2% of the clean signal
	noiseAmplitude = 0.02
)

// FittingDataset holds the synthetic x/y samples for the curve-fitting
// case. It is passed by value: objectives own their copy of the slices'
// headers and never mutate the data.
type FittingDataset struct {
	X []float64
	Y []float64
}

// DoubleGaussian evaluates the two-Gaussian mixture model at x.
func DoubleGaussian(params []float64, x float64) float64 {
	if len(params) != 6 {
		panic("testfn: DoubleGaussian needs 6 parameters")
	}
	d1 := (x - params[1]) / params[2]
	d2 := (x - params[4]) / params[5]
	return params[0]*math.Exp(-0.5*d1*d1) + params[3]*math.Exp(-0.5*d2*d2)
}

// GenerateFittingDataset produces the fixed 500-sample dataset: x evenly
// spaced in [-3,3], y the clean mixture signal plus zero-centered uniform
// noise of amplitude 2% of the signal. The same seed yields identical
// arrays.
func GenerateFittingDataset(seed int64) FittingDataset {
	rng := utils.NewRandSource(seed)

	ds := FittingDataset{
		X: make([]float64, fittingSamples),
		Y: make([]float64, fittingSamples),
	}
	for i := 0; i < fittingSamples; i++ {
		x := fittingXMin + (fittingXMax-fittingXMin)*float64(i)/float64(fittingSamples-1)
		clean := DoubleGaussian(TrueDoubleGaussianParams, x)
		noise := noiseAmplitude * clean * rng.UniformFloat64(-0.5, 0.5)
		ds.X[i] = x
		ds.Y[i] = clean + noise
	}
	return ds
}

// DoubleGaussianResidual scores candidate mixture parameters by the sum
// of squared residuals against its dataset. The dataset is bound at
// construction, so the objective carries its auxiliary data explicitly
// instead of receiving an untyped pointer at call time.
type DoubleGaussianResidual struct {
	Data FittingDataset
}

func (DoubleGaussianResidual) Name() string { return "DoubleGaussian" }

func (f DoubleGaussianResidual) Func(params []float64) float64 {
	ssr := 0.0
	for i, x := range f.Data.X {
		r := f.Data.Y[i] - DoubleGaussian(params, x)
		ssr += r * r
	}
	return ssr
}
