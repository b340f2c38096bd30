package bench

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/gosolve/optbench/internal/report"
	"github.com/gosolve/optbench/internal/solver"
	"github.com/gosolve/optbench/pkg/config"
	"github.com/gosolve/optbench/pkg/logger"
	"github.com/gosolve/optbench/pkg/utils"
)

// Algorithm labels every result row so cross-language comparisons can
// tell the harnesses apart.
const Algorithm = "Gonum_NelderMead"

// Runner configures and invokes the optimizer for one test case at a
// time, timing the call and counting objective evaluations.
type Runner struct {
	cfg     config.SolverConfig
	counter EvalCounter
}

// NewRunner creates a runner with the given solver stopping criteria.
func NewRunner(cfg config.SolverConfig) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes one test case and returns its result record. An optimizer
// failure of any kind is captured as sentinel fields; it never propagates
// to the caller, so one case's failure cannot abort the suite.
func (r *Runner) Run(tc TestCase) report.Result {
	objective := func(x []float64) float64 {
		r.counter.Inc()
		return tc.Objective.Func(x)
	}

	cfg := solver.Config{
		Dim:      len(tc.Initial),
		FTolRel:  r.cfg.FTolRel,
		XTolRel:  r.cfg.XTolRel,
		MaxEvals: r.cfg.MaxEvaluations,
	}

	r.counter.Reset()
	start := time.Now()
	out, err := solver.Minimize(cfg, objective, tc.Initial)
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("optimizer failure", "case", tc.Name, "error", err)
		return failedResult(tc.Name)
	}

	return report.Result{
		TestName:            tc.Name,
		Algorithm:           Algorithm,
		ExecutionTimeMs:     utils.TimeToMs(elapsed),
		FunctionEvaluations: r.counter.Count(),
		FinalValue:          out.F,
		FinalParameters:     out.X,
		ParameterError:      paramError(out.X, tc.Expected),
		Converged:           out.Status.Success(),
	}
}

// failedResult builds the sentinel record for a failed optimizer call.
func failedResult(name string) report.Result {
	return report.Result{
		TestName:            name,
		Algorithm:           Algorithm,
		ExecutionTimeMs:     -1,
		FunctionEvaluations: -1,
		FinalValue:          math.NaN(),
		ParameterError:      math.NaN(),
		Converged:           false,
	}
}

// paramError is the maximum absolute per-component difference between
// the final and expected vectors, computed over their shared prefix so
// mismatched lengths never index out of bounds.
func paramError(final, expected []float64) float64 {
	n := len(final)
	if len(expected) < n {
		n = len(expected)
	}
	if n == 0 {
		return 0
	}
	diff := make([]float64, n)
	floats.SubTo(diff, final[:n], expected[:n])
	return floats.Norm(diff, math.Inf(1))
}
