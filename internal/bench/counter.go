package bench

// EvalCounter counts objective-function dispatches during a single run.
// Each runner owns its own counter and threads it into the objective
// through a wrapping closure, so benchmark runs never share counting
// state. It is not safe for concurrent use within one run, which is fine:
// the optimizer call is strictly sequential.
type EvalCounter struct {
	n int
}

// Reset zeroes the counter.
func (c *EvalCounter) Reset() {
	c.n = 0
}

// Inc records one objective dispatch.
func (c *EvalCounter) Inc() {
	c.n++
}

// Count returns the number of dispatches since the last Reset.
func (c *EvalCounter) Count() int {
	return c.n
}
