package utils

import (
	"testing"
	"time"
)

func TestTimeToMs(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"One second", time.Second, 1000},
		{"One millisecond", time.Millisecond, 1},
		{"Sub-millisecond", 250 * time.Microsecond, 0.25},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeToMs(tt.d); got != tt.want {
				t.Errorf("TimeToMs(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{1500 * time.Microsecond, "2ms"},
		{2500 * time.Millisecond, "2.5s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
