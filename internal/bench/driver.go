package bench

import (
	"github.com/gosolve/optbench/internal/report"
	"github.com/gosolve/optbench/pkg/logger"
)

// Driver executes a case sequence in order, feeding each result to the
// aggregator. Runs are strictly sequential: a run completes before the
// next starts, and a failed case never stops the remaining ones.
type Driver struct {
	runner *Runner
	cases  []TestCase
}

// NewDriver creates a driver over the given runner and case sequence.
func NewDriver(runner *Runner, cases []TestCase) *Driver {
	return &Driver{runner: runner, cases: cases}
}

// RunAll runs every case in order.
func (d *Driver) RunAll(agg *report.Aggregator) {
	for _, tc := range d.cases {
		logger.Debug("running case", "name", tc.Name, "dim", len(tc.Initial))
		result := d.runner.Run(tc)
		agg.Add(result)
		logger.Debug("case finished",
			"name", tc.Name,
			"time_ms", result.ExecutionTimeMs,
			"evaluations", result.FunctionEvaluations,
			"converged", result.Converged)
	}
}
