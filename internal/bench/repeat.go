package bench

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/gosolve/optbench/pkg/logger"
)

// Repeat runs one case n times and returns the arithmetic mean execution
// time in milliseconds over the successful runs. It bypasses result
// aggregation entirely: this mode exists to average out measurement
// noise, not to collect accuracy data. Failed runs are discarded; if
// every run fails, an error is returned.
func (r *Runner) Repeat(tc TestCase, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("repeat count must be positive, got %d", n)
	}

	times := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		result := r.Run(tc)
		if result.Failed() {
			logger.Warn("discarding failed run", "case", tc.Name, "iteration", i)
			continue
		}
		times = append(times, result.ExecutionTimeMs)
	}

	if len(times) == 0 {
		return 0, fmt.Errorf("all %d runs of %s failed", n, tc.Name)
	}
	return stat.Mean(times, nil), nil
}
