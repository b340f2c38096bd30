package bench

import (
	"math"
	"testing"

	"github.com/gosolve/optbench/internal/testfn"
	"github.com/gosolve/optbench/pkg/config"
)

// explodingObjective forces an optimizer runtime failure on first dispatch.
type explodingObjective struct{}

func (explodingObjective) Name() string             { return "Exploding" }
func (explodingObjective) Func(x []float64) float64 { panic("forced breakdown") }

func testRunner() *Runner {
	return NewRunner(config.Default().Solver)
}

func TestRunSphereConverges(t *testing.T) {
	tests := []struct {
		name     string
		dim      int
		valueTol float64
		paramTol float64
	}{
		{"Sphere2D", 2, 1e-6, 1e-3},
		{"Sphere5D", 5, 1e-6, 1e-3},
		{"Sphere10D", 10, 1e-4, 1e-2},
		{"Sphere20D", 20, 1e-3, 5e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := TestCase{
				Name:      tt.name,
				Objective: testfn.Sphere{},
				Initial:   ones(tt.dim),
				Expected:  zeros(tt.dim),
			}
			result := testRunner().Run(tc)

			if !result.Converged {
				t.Fatal("Expected a converged run")
			}
			if result.FinalValue > tt.valueTol {
				t.Errorf("Expected final value near 0, got %g", result.FinalValue)
			}
			if result.ParameterError > tt.paramTol {
				t.Errorf("Expected parameters near the origin, error %g", result.ParameterError)
			}
			if result.FunctionEvaluations <= 0 || result.FunctionEvaluations > 10000 {
				t.Errorf("Evaluation count %d outside (0, 10000]", result.FunctionEvaluations)
			}
			if result.ExecutionTimeMs < 0 {
				t.Errorf("Expected non-negative execution time, got %g", result.ExecutionTimeMs)
			}
		})
	}
}

func TestRunRosenbrock(t *testing.T) {
	tc := TestCase{
		Name:      "Rosenbrock",
		Objective: testfn.Rosenbrock{},
		Initial:   []float64{-1.2, 1.0},
		Expected:  []float64{1.0, 1.0},
	}
	result := testRunner().Run(tc)

	if !result.Converged {
		t.Fatal("Expected a converged run")
	}
	if result.ParameterError > 1e-3 {
		t.Errorf("Expected parameter error below 1e-3, got %g", result.ParameterError)
	}
}

func TestRunCatalogueCases(t *testing.T) {
	tests := []struct {
		name     string
		obj      testfn.Objective
		initial  []float64
		expected []float64
	}{
		{"Booth", testfn.Booth{}, []float64{0, 0}, []float64{1, 3}},
		{"Beale", testfn.Beale{}, []float64{1, 1}, []float64{3, 0.5}},
		{"Himmelblau", testfn.Himmelblau{}, []float64{0, 0}, []float64{3, 2}},
		{"Powell", testfn.Powell{}, []float64{3, -1, 0, 1}, []float64{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := TestCase{Name: tt.name, Objective: tt.obj, Initial: tt.initial, Expected: tt.expected}
			result := testRunner().Run(tc)

			if !result.Converged {
				t.Fatal("Expected a converged run within the evaluation budget")
			}
			if result.ParameterError > 1e-2 {
				t.Errorf("Expected parameter error below 1e-2, got %g", result.ParameterError)
			}
			if result.FunctionEvaluations > 10000 {
				t.Errorf("Evaluation count %d exceeds the budget", result.FunctionEvaluations)
			}
		})
	}
}

func TestRunFailureProducesSentinels(t *testing.T) {
	tc := TestCase{
		Name:      "Exploding",
		Objective: explodingObjective{},
		Initial:   []float64{1, 1},
		Expected:  []float64{0, 0},
	}
	result := testRunner().Run(tc)

	if result.ExecutionTimeMs != -1 {
		t.Errorf("Expected sentinel time -1, got %g", result.ExecutionTimeMs)
	}
	if result.FunctionEvaluations != -1 {
		t.Errorf("Expected sentinel evaluation count -1, got %d", result.FunctionEvaluations)
	}
	if !math.IsNaN(result.FinalValue) {
		t.Errorf("Expected NaN final value, got %g", result.FinalValue)
	}
	if !math.IsNaN(result.ParameterError) {
		t.Errorf("Expected NaN parameter error, got %g", result.ParameterError)
	}
	if result.Converged {
		t.Error("A failed run must not report convergence")
	}
	if !result.Failed() {
		t.Error("Expected the sentinel combination to register as failed")
	}
}

func TestRunEmptyInitialGuessFailsCleanly(t *testing.T) {
	tc := TestCase{
		Name:      "Degenerate",
		Objective: testfn.Sphere{},
		Initial:   nil,
		Expected:  nil,
	}
	result := testRunner().Run(tc)

	if !result.Failed() {
		t.Error("Expected a sentinel result for a zero-dimensional case")
	}
}

func TestParamErrorSharedPrefix(t *testing.T) {
	tests := []struct {
		name     string
		final    []float64
		expected []float64
		want     float64
	}{
		{"Equal lengths", []float64{1, 2}, []float64{1, 2}, 0},
		{"Final longer", []float64{1, 2, 3}, []float64{1, 2}, 0},
		{"Expected longer", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"Max over prefix", []float64{1.5, 2.25, 99}, []float64{1, 2}, 0.5},
		{"Empty final", nil, []float64{1, 2}, 0},
		{"Both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paramError(tt.final, tt.expected); got != tt.want {
				t.Errorf("paramError(%v, %v) = %g, want %g", tt.final, tt.expected, got, tt.want)
			}
		})
	}
}

func TestRunCountsOnlyObjectiveDispatches(t *testing.T) {
	tc := TestCase{
		Name:      "Sphere2D",
		Objective: testfn.Sphere{},
		Initial:   []float64{1, 1},
		Expected:  []float64{0, 0},
	}
	runner := testRunner()
	first := runner.Run(tc)
	second := runner.Run(tc)

	// The counter is reset per invocation: a deterministic case gives the
	// same count both times, not an accumulating one.
	if first.FunctionEvaluations != second.FunctionEvaluations {
		t.Errorf("Counts differ across identical runs: %d vs %d",
			first.FunctionEvaluations, second.FunctionEvaluations)
	}
}
