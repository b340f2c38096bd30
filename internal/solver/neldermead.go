// Package solver wraps the external derivative-free minimization routine
// behind the fixed contract the benchmark runner relies on: configure,
// bind an objective, optimize, and report a status code where positive
// values denote success. The underlying method is gonum's Nelder-Mead
// simplex search.
package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Config holds the optimizer configuration for a single run.
type Config struct {
	// Dim is the dimensionality of the parameter space
	Dim int
	// FTolRel is the relative function-value tolerance
	FTolRel float64
	// XTolRel is the relative parameter tolerance. The simplex method
	// terminates on function convergence; XTolRel is validated for
	// contract parity with the NLopt harness but does not add a
	// separate stopping rule.
	XTolRel float64
	// MaxEvals is the objective evaluation budget
	MaxEvals int
}

// Validate reports a ConfigError if the configuration cannot produce a
// well-defined optimization run.
func (c Config) Validate() error {
	if c.Dim <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("dimension must be positive, got %d", c.Dim)}
	}
	if c.FTolRel <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("relative function tolerance must be positive, got %g", c.FTolRel)}
	}
	if c.XTolRel <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("relative parameter tolerance must be positive, got %g", c.XTolRel)}
	}
	if c.MaxEvals <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("evaluation budget must be positive, got %d", c.MaxEvals)}
	}
	return nil
}

// Status is the solver termination code. Positive codes denote success,
// zero or negative codes denote failure, matching the status convention
// of the NLopt reference harness.
type Status int

const (
	// StatusFailure denotes numerical breakdown or a forced stop
	StatusFailure Status = -1
	// StatusNotTerminated denotes a run that never reached a stopping rule
	StatusNotTerminated Status = 0
	// StatusConverged denotes convergence under the configured tolerances
	StatusConverged Status = 1
	// StatusBudgetExhausted denotes termination by the evaluation budget.
	// The reference harness counts this as success (NLopt MAXEVAL_REACHED
	// is a positive code), so it is positive here too.
	StatusBudgetExhausted Status = 2
)

// Success reports whether the status denotes a successful run.
func (s Status) Success() bool { return s > 0 }

func (s Status) String() string {
	switch s {
	case StatusFailure:
		return "Failure"
	case StatusNotTerminated:
		return "NotTerminated"
	case StatusConverged:
		return "Converged"
	case StatusBudgetExhausted:
		return "BudgetExhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of a completed optimizer call.
type Outcome struct {
	// X is the final parameter vector
	X []float64
	// F is the final objective value
	F float64
	// Status is the termination code
	Status Status
}

// Minimize runs the Nelder-Mead simplex search for fn starting at x0.
// It returns a ConfigError before touching the optimizer when the
// configuration or initial guess is invalid, and a RuntimeError when the
// optimizer breaks down mid-run. Panics raised below the optimizer
// boundary are converted to RuntimeErrors rather than unwound further.
func Minimize(cfg Config, fn func([]float64) float64, x0 []float64) (out *Outcome, err error) {
	if fn == nil {
		return nil, &ConfigError{Reason: "an objective function is required"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != cfg.Dim {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("initial guess has %d components, configured dimension is %d", len(x0), cfg.Dim),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RuntimeError{Reason: fmt.Sprintf("optimizer panic: %v", r)}
		}
	}()

	// gonum evaluates the objective on a worker goroutine, so a panic
	// there never reaches a recover in this frame. Trap it at the call
	// site instead: poison further evaluations with NaN and surface the
	// recorded failure once the optimizer returns.
	var objErr *RuntimeError
	wrapped := func(x []float64) (f float64) {
		if objErr != nil {
			return math.NaN()
		}
		defer func() {
			if r := recover(); r != nil {
				objErr = &RuntimeError{Reason: fmt.Sprintf("objective panic: %v", r)}
				f = math.NaN()
			}
		}()
		return fn(x)
	}

	// The stall window scales with dimension: initial simplex
	// construction evaluates dim+1 vertices without improving the
	// incumbent, so a fixed small window would satisfy the stop rule
	// before the search even starts.
	stallIterations := 20 * (cfg.Dim + 1)
	if stallIterations < 100 {
		stallIterations = 100
	}

	problem := optimize.Problem{Func: wrapped}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-20,
			Relative:   cfg.FTolRel,
			Iterations: stallIterations,
		},
		FuncEvaluations: cfg.MaxEvals,
	}

	initX := make([]float64, len(x0))
	copy(initX, x0)

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if objErr != nil {
		return nil, objErr
	}
	if err != nil {
		return nil, &RuntimeError{Reason: "minimization failed", Err: err}
	}

	return &Outcome{
		X:      result.X,
		F:      result.F,
		Status: translateStatus(result.Status),
	}, nil
}

// translateStatus maps gonum termination statuses onto the harness
// status codes.
func translateStatus(s optimize.Status) Status {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return StatusConverged
	case optimize.FunctionEvaluationLimit,
		optimize.IterationLimit,
		optimize.RuntimeLimit:
		return StatusBudgetExhausted
	case optimize.NotTerminated:
		return StatusNotTerminated
	default:
		return StatusFailure
	}
}

// ConfigError reports an optimizer configuration the solver refused to run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid optimizer configuration: " + e.Reason
}

// RuntimeError reports a numerical breakdown or forced stop inside the
// optimizer.
type RuntimeError struct {
	Reason string
	Err    error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return "optimizer runtime failure: " + e.Reason + ": " + e.Err.Error()
	}
	return "optimizer runtime failure: " + e.Reason
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
