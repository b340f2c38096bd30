package bench

import (
	"github.com/gosolve/optbench/internal/testfn"
)

// TestCase describes one benchmark: the objective to minimize, the
// starting point, and the reference solution accuracy is scored against.
// Cases are immutable after construction.
//
// Objectives that need auxiliary data (the curve-fitting residual) carry
// it internally, bound at construction; the case itself holds nothing
// untyped.
type TestCase struct {
	Name      string
	Objective testfn.Objective
	Initial   []float64
	Expected  []float64
}
