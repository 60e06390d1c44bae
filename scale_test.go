package plllots_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/kofi-q/plllots-go"
	"github.com/stretchr/testify/require"
)

func TestScaleDetails(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want plllots.Scale
	}{
		{
			name: "positive",
			data: []float64{150, 230, 224, 218, 135, 147, 260},
			want: plllots.Scale{Min: 0, Max: 300, Step: 50},
		},
		{
			name: "large positive",
			data: []float64{820, 932, 901, 934, 1290, 1330, 1320},
			want: plllots.Scale{Min: 0, Max: 1500, Step: 300},
		},
		{
			name: "straddles zero",
			data: []float64{200, 560, 750, 580, 300, -250, 450},
			want: plllots.Scale{Min: -400, Max: 800, Step: 200},
		},
		{
			name: "fractional",
			data: []float64{0.0150, 0.0230, 0.0224, 0.0218, 0.0135, 0.0147, 0.0260},
			want: plllots.Scale{Min: 0, Max: 0.03, Step: 0.005},
		},
		{
			name: "negative",
			data: []float64{-150, -230, -224, -218, -135, -147, -260},
			want: plllots.Scale{Min: -300, Max: 0, Step: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := plllots.RawRange(tt.data)
			require.True(t, ok)

			got := plllots.ScaleDetails(min, max)
			require.InDelta(t, tt.want.Min, got.Min, 1e-9)
			require.InDelta(t, tt.want.Max, got.Max, 1e-9)
			require.InDelta(t, tt.want.Step, got.Step, 1e-12)
		})
	}
}

func TestScaleDetailsSwapsReversedRange(t *testing.T) {
	require.Equal(t, plllots.ScaleDetails(135, 260), plllots.ScaleDetails(260, 135))
}

func TestScaleDetailsZeroWidth(t *testing.T) {
	got := plllots.ScaleDetails(0, 0)
	require.Equal(t, plllots.Scale{Min: -1, Max: 1, Step: 1}, got)
	require.Equal(t, 3, got.TickCount())
}

func TestScaleDetailsSingleValue(t *testing.T) {
	got := plllots.ScaleDetails(42, 42)
	require.Greater(t, got.Step, 0.0)
	require.LessOrEqual(t, got.Min, 0.0)
	require.GreaterOrEqual(t, got.Max, 42.0)
}

func TestScaleDetailsExtremeRange(t *testing.T) {
	got := plllots.ScaleDetails(-1e308, 1e308)
	require.InEpsilon(t, -1.5e308, got.Min, 1e-9)
	require.InEpsilon(t, 1.5e308, got.Max, 1e-9)
	require.InEpsilon(t, 5e307, got.Step, 1e-9)
	require.Equal(t, 7, got.TickCount())
}

func TestScaleDetailsSubnormalRange(t *testing.T) {
	got := plllots.ScaleDetails(1e-320, 2e-320)
	for _, v := range []float64{got.Min, got.Max, got.Step} {
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "scale %+v is not finite", got)
	}
	require.Greater(t, got.Step, 0.0)
	require.GreaterOrEqual(t, got.Max, 2e-320)
}

func TestScaleDetailsProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 2000 {
		mag := math.Pow10(rng.IntN(12) - 6)
		a := (rng.Float64()*2 - 1) * mag
		b := (rng.Float64()*2 - 1) * mag
		lo, hi := min(a, b), max(a, b)

		s := plllots.ScaleDetails(lo, hi)
		if !(s.Step > 0) {
			t.Fatalf("ScaleDetails(%g, %g).Step = %g, want > 0", lo, hi, s.Step)
		}
		if s.Min > min(lo, 0) || s.Max < max(hi, 0) {
			t.Errorf("ScaleDetails(%g, %g) = [%g, %g], does not cover data and zero", lo, hi, s.Min, s.Max)
		}

		steps := (s.Max - s.Min) / s.Step
		if math.Abs(steps-math.Round(steps)) > 1e-6 {
			t.Errorf("ScaleDetails(%g, %g) span is %g steps, want a whole number", lo, hi, steps)
		}
		if got, want := s.TickCount(), int(math.Round(steps))+1; got != want {
			t.Errorf("ScaleDetails(%g, %g).TickCount() = %d, want %d", lo, hi, got, want)
		}
	}
}

func TestScaleTicks(t *testing.T) {
	s := plllots.Scale{Min: -400, Max: 800, Step: 200}
	require.Equal(t, []float64{-400, -200, 0, 200, 400, 600, 800}, s.Ticks())
	require.True(t, s.Contains(800))
	require.False(t, s.Contains(800.5))

	require.Zero(t, plllots.Scale{}.TickCount())
	require.Zero(t, plllots.Scale{Min: 1, Max: 0, Step: 1}.TickCount())
	require.Zero(t, plllots.Scale{Min: math.NaN(), Max: math.NaN(), Step: 1}.TickCount())
	require.Zero(t, plllots.Scale{Min: 0, Max: math.Inf(1), Step: 1}.TickCount())
	require.Zero(t, plllots.Scale{Min: 0, Max: 1e9, Step: 1e-9}.TickCount())
}

func TestRawRange(t *testing.T) {
	min, max, ok := plllots.RawRange([]float64{3, -1}, nil, []float64{7})
	require.True(t, ok)
	require.Equal(t, -1.0, min)
	require.Equal(t, 7.0, max)

	_, _, ok = plllots.RawRange(nil, []float64{})
	require.False(t, ok)
}

func BenchmarkScaleDetails(b *testing.B) {
	for b.Loop() {
		plllots.ScaleDetails(-250, 750)
	}
}
