package testfn

import (
	"gonum.org/v1/gonum/floats"
)

// Objective is a deterministic scalar cost function over a parameter
// vector. Name identifies the function in results and reports.
type Objective interface {
	Name() string
	Func(x []float64) float64
}

// Rosenbrock implements the two-dimensional Rosenbrock function
// f(x,y) = (a-x)^2 + b(y-x^2)^2 with a=1, b=100.
// Global minimum 0 at (1,1).
type Rosenbrock struct{}

func (Rosenbrock) Name() string { return "Rosenbrock" }

func (Rosenbrock) Func(x []float64) float64 {
	if len(x) != 2 {
		panic("testfn: Rosenbrock dimension must be 2")
	}
	a, b := 1.0, 100.0
	t1 := a - x[0]
	t2 := x[1] - x[0]*x[0]
	return t1*t1 + b*t2*t2
}

// Sphere implements the n-dimensional sphere function f(x) = sum(x_i^2).
// Global minimum 0 at the origin for any dimension.
type Sphere struct{}

func (Sphere) Name() string { return "Sphere" }

func (Sphere) Func(x []float64) float64 {
	return floats.Dot(x, x)
}

// Booth implements f(x,y) = (x + 2y - 7)^2 + (2x + y - 5)^2.
// Global minimum 0 at (1,3).
type Booth struct{}

func (Booth) Name() string { return "Booth" }

func (Booth) Func(x []float64) float64 {
	if len(x) != 2 {
		panic("testfn: Booth dimension must be 2")
	}
	t1 := x[0] + 2*x[1] - 7
	t2 := 2*x[0] + x[1] - 5
	return t1*t1 + t2*t2
}

// Beale implements
// f(x,y) = (1.5 - x + xy)^2 + (2.25 - x + xy^2)^2 + (2.625 - x + xy^3)^2.
// Global minimum 0 at (3, 0.5).
type Beale struct{}

func (Beale) Name() string { return "Beale" }

func (Beale) Func(x []float64) float64 {
	if len(x) != 2 {
		panic("testfn: Beale dimension must be 2")
	}
	t1 := 1.5 - x[0] + x[0]*x[1]
	t2 := 2.25 - x[0] + x[0]*x[1]*x[1]
	t3 := 2.625 - x[0] + x[0]*x[1]*x[1]*x[1]
	return t1*t1 + t2*t2 + t3*t3
}

// Himmelblau implements f(x,y) = (x^2 + y - 11)^2 + (x + y^2 - 7)^2.
// It has four symmetric global minima of value 0; the suite scores
// solutions against (3,2) only.
type Himmelblau struct{}

func (Himmelblau) Name() string { return "Himmelblau" }

func (Himmelblau) Func(x []float64) float64 {
	if len(x) != 2 {
		panic("testfn: Himmelblau dimension must be 2")
	}
	t1 := x[0]*x[0] + x[1] - 11
	t2 := x[0] + x[1]*x[1] - 7
	return t1*t1 + t2*t2
}

// Powell implements the four-dimensional Powell singular function.
// Global minimum 0 at the origin.
type Powell struct{}

func (Powell) Name() string { return "Powell" }

func (Powell) Func(x []float64) float64 {
	if len(x) != 4 {
		panic("testfn: Powell dimension must be 4")
	}
	t1 := x[0] + 10*x[1]
	t2 := x[2] - x[3]
	t3 := x[1] - 2*x[2]
	t4 := x[0] - x[3]
	return t1*t1 + 5*t2*t2 + t3*t3*t3*t3 + 10*t4*t4*t4*t4
}
