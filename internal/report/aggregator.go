// Package report collects benchmark results in execution order and
// renders them as a console table and a CSV file for cross-language
// comparison.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVHeader is the fixed column header shared with the harnesses in the
// other languages this suite is compared against.
const CSVHeader = "TestName,Algorithm,ExecutionTime_ms,FunctionEvaluations,FinalValue,ParameterError,Converged"

// Aggregator holds the ordered sequence of benchmark results.
type Aggregator struct {
	results []Result
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{results: make([]Result, 0)}
}

// Add appends a result. Results keep their insertion order; they are
// never reordered.
func (a *Aggregator) Add(r Result) {
	a.results = append(a.results, r)
}

// Results returns a copy of the result sequence in insertion order.
func (a *Aggregator) Results() []Result {
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}

// Render writes the fixed-width result table.
func (a *Aggregator) Render(w io.Writer) {
	fmt.Fprintf(w, "\n=== Nelder-Mead Benchmark Results ===\n")
	fmt.Fprintf(w, "%-15s%-10s%-10s%-12s%-12s%-10s\n",
		"Test", "Time(ms)", "FuncEval", "FinalValue", "ParamError", "Converged")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, r := range a.results {
		converged := "NO"
		if r.Converged {
			converged = "YES"
		}
		fmt.Fprintf(w, "%-15s%-10.1f%-10d%-12.2e%-12.2e%-10s\n",
			r.TestName, r.ExecutionTimeMs, r.FunctionEvaluations,
			r.FinalValue, r.ParameterError, converged)
	}
}

// WriteCSV writes all results to path, overwriting any existing file.
// Numeric fields are plain decimal text and nothing is quoted: no field
// can contain a comma. A write failure is returned to the caller; there
// is no partial-result fallback.
func (a *Aggregator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create result file %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, CSVHeader)
	for _, r := range a.results {
		fmt.Fprintf(w, "%s,%s,%s,%d,%s,%s,%t\n",
			r.TestName,
			r.Algorithm,
			formatFloat(r.ExecutionTimeMs),
			r.FunctionEvaluations,
			formatFloat(r.FinalValue),
			formatFloat(r.ParameterError),
			r.Converged)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}
	return nil
}

// formatFloat renders a float the shortest way that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
