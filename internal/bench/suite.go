package bench

import (
	"github.com/gosolve/optbench/internal/testfn"
)

// Suite returns the fixed, ordered benchmark sequence. The order and the
// starting points are shared with the harnesses in other languages, so
// neither may change.
func Suite() []TestCase {
	fitting := testfn.GenerateFittingDataset(testfn.DefaultFittingSeed)

	return []TestCase{
		{
			Name:      "Rosenbrock",
			Objective: testfn.Rosenbrock{},
			Initial:   []float64{-1.2, 1.0},
			Expected:  []float64{1.0, 1.0},
		},
		{
			Name:      "Sphere5D",
			Objective: testfn.Sphere{},
			Initial:   []float64{1.0, -2.0, 0.5, -1.5, 3.0},
			Expected:  zeros(5),
		},
		{
			Name:      "Booth",
			Objective: testfn.Booth{},
			Initial:   []float64{0.0, 0.0},
			Expected:  []float64{1.0, 3.0},
		},
		{
			Name:      "Beale",
			Objective: testfn.Beale{},
			Initial:   []float64{1.0, 1.0},
			Expected:  []float64{3.0, 0.5},
		},
		{
			Name:      "Himmelblau",
			Objective: testfn.Himmelblau{},
			Initial:   []float64{0.0, 0.0},
			// One of four symmetric minima; the suite scores against this
			// one only, even when the optimizer lands in another.
			Expected: []float64{3.0, 2.0},
		},
		{
			Name:      "Powell",
			Objective: testfn.Powell{},
			Initial:   []float64{3.0, -1.0, 0.0, 1.0},
			Expected:  zeros(4),
		},
		{
			Name:      "DoubleGaussian",
			Objective: testfn.DoubleGaussianResidual{Data: fitting},
			Initial:   []float64{1.0, 0.5, 0.8, 0.8, 1.5, 0.6},
			Expected:  append([]float64(nil), testfn.TrueDoubleGaussianParams...),
		},
		{
			Name:      "Sphere2D",
			Objective: testfn.Sphere{},
			Initial:   []float64{1.0, 1.0},
			Expected:  zeros(2),
		},
		{
			Name:      "Sphere10D",
			Objective: testfn.Sphere{},
			Initial:   ones(10),
			Expected:  zeros(10),
		},
		{
			Name:      "Sphere20D",
			Objective: testfn.Sphere{},
			Initial:   ones(20),
			Expected:  zeros(20),
		},
	}
}

// CaseByName looks a case up in the fixed suite.
func CaseByName(name string) (TestCase, bool) {
	for _, tc := range Suite() {
		if tc.Name == name {
			return tc, true
		}
	}
	return TestCase{}, false
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}
