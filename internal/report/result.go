package report

// Result records the outcome of one benchmark run. It is built once by
// the benchmark runner and never mutated afterwards; the aggregator owns
// the sequence of results in execution order.
//
// A failed optimizer call is encoded by the sentinel combination
// ExecutionTimeMs == -1, FunctionEvaluations == -1, NaN FinalValue and
// ParameterError, and Converged == false.
type Result struct {
	TestName            string
	Algorithm           string
	ExecutionTimeMs     float64
	FunctionEvaluations int
	FinalValue          float64
	FinalParameters     []float64
	ParameterError      float64
	Converged           bool
}

// Failed reports whether the result carries the failure sentinels.
func (r Result) Failed() bool {
	return r.ExecutionTimeMs == -1
}
