package plllots_test

import (
	"testing"

	"github.com/kofi-q/plllots-go"
)

func TestTickmarkPrecision(t *testing.T) {
	tests := []struct {
		div  float64
		want int
	}{
		{50, 0},
		{1, 0},
		{0.5, 1},
		{0.005, 3},
		{0.00075, 4},
	}

	for _, tt := range tests {
		if got := plllots.TickmarkPrecision(tt.div); got != tt.want {
			t.Errorf("TickmarkPrecision(%g) = %d, want %d", tt.div, got, tt.want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{0, 50, "0"},
		{250, 50, "250"},
		{-400, 200, "-400"},
		{0.015, 0.005, "0.015"},
		{0.1 + 0.2, 0.1, "0.3"},
		{0.15 * 3, 0.15, "0.45"},
		{7.5, 7.5, "7.5"},
		{-1e-17, 0.5, "0"},
		{1500, 300, "1500"},
		{2.5, 0, "2.5"},
	}

	for _, tt := range tests {
		if got := plllots.FormatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("FormatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}
