// Package testfn provides the suite of objective functions the benchmark
// harness minimizes: classic analytic test functions with known global
// minima, plus a synthetic double-Gaussian curve-fitting residual.
//
// Every function is deterministic, side-effect-free, and defined for any
// real input. Evaluation counting is done by the benchmark runner, not
// here, so the functions stay pure.
package testfn
