package bench

import "testing"

func TestEvalCounter(t *testing.T) {
	var c EvalCounter

	if c.Count() != 0 {
		t.Errorf("Expected a fresh counter to read 0, got %d", c.Count())
	}

	for i := 0; i < 7; i++ {
		c.Inc()
	}
	if c.Count() != 7 {
		t.Errorf("Expected 7 after 7 increments, got %d", c.Count())
	}

	c.Reset()
	if c.Count() != 0 {
		t.Errorf("Expected 0 after reset, got %d", c.Count())
	}

	c.Inc()
	if c.Count() != 1 {
		t.Errorf("Expected 1 after reset and one increment, got %d", c.Count())
	}
}

func TestEvalCounterCountsExactDispatches(t *testing.T) {
	tests := []struct {
		name string
		k    int
	}{
		{"Zero calls", 0},
		{"One call", 1},
		{"Many calls", 153},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c EvalCounter
			c.Reset()
			for i := 0; i < tt.k; i++ {
				c.Inc()
			}
			if c.Count() != tt.k {
				t.Errorf("Expected %d, got %d", tt.k, c.Count())
			}
		})
	}
}
