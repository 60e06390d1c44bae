package plllots_test

import (
	"errors"
	"math"
	"testing"

	"github.com/kofi-q/plllots-go"
	"github.com/stretchr/testify/require"
)

func TestDefaultMarginOffsets(t *testing.T) {
	x, y, err := plllots.DefaultMargins().Offsets(plllots.Size{Width: 800, Height: 600})
	require.NoError(t, err)

	require.Equal(t, plllots.NewOffsets(80, 720), x)
	require.Equal(t, 640.0, x.Span)
	require.Equal(t, 1.0, x.Direction())

	// Y runs from the bottom edge up.
	require.Equal(t, plllots.NewOffsets(540, 60), y)
	require.Equal(t, 480.0, y.Span)
	require.Equal(t, -1.0, y.Direction())
}

func TestOffsetsAt(t *testing.T) {
	o := plllots.NewOffsets(540, 60)

	require.Equal(t, 540.0, o.At(0))
	require.Equal(t, 60.0, o.At(1))
	require.Equal(t, 300.0, o.At(0.5))
	require.Equal(t, 0.25, o.Fraction(420))
}

func TestMarginOffsetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		margins plllots.Margins
		size    plllots.Size
	}{
		{
			name:    "horizontal overlap",
			margins: plllots.Margins{Left: plllots.Percent(60), Right: plllots.Percent(40)},
			size:    plllots.Size{Width: 800, Height: 600},
		},
		{
			name:    "vertical overlap",
			margins: plllots.Margins{Top: plllots.Pixels(300), Bottom: plllots.Pixels(301)},
			size:    plllots.Size{Width: 800, Height: 600},
		},
		{
			name:    "zero size",
			margins: plllots.DefaultMargins(),
			size:    plllots.Size{},
		},
		{
			name:    "infinite size",
			margins: plllots.DefaultMargins(),
			size:    plllots.Size{Width: math.Inf(1), Height: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.margins.Offsets(tt.size)
			require.ErrorIs(t, err, plllots.ErrConfig)

			var cfgErr *plllots.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, plllots.ComponentMargins, cfgErr.Component)
			require.Equal(t, -1, cfgErr.Index)
		})
	}
}

func TestMarginText(t *testing.T) {
	tests := []struct {
		text string
		want plllots.Margin
	}{
		{"60", plllots.Pixels(60)},
		{"60px", plllots.Pixels(60)},
		{" 12.5% ", plllots.Percent(12.5)},
		{"0", plllots.Pixels(0)},
	}

	for _, tt := range tests {
		var got plllots.Margin
		require.NoError(t, got.UnmarshalText([]byte(tt.text)))
		require.Equal(t, tt.want, got, "UnmarshalText(%q)", tt.text)
	}

	var m plllots.Margin
	require.Error(t, m.UnmarshalText([]byte("wide")))

	require.Equal(t, "10%", plllots.Percent(10).String())
	require.Equal(t, "60", plllots.Pixels(60).String())
	require.Equal(t, 80.0, plllots.Percent(10).Resolve(800))
	require.Equal(t, 60.0, plllots.Pixels(60).Resolve(800))
}
