package plllots_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kofi-q/plllots-go"
	"github.com/stretchr/testify/require"
)

func TestSeriesColorCycles(t *testing.T) {
	th := plllots.DefaultTheme()
	n := len(th.SeriesColors)
	require.Equal(t, 9, n)

	require.Equal(t, plllots.MustParseColor("#5470c6"), th.SeriesColor(0))
	require.Equal(t, th.SeriesColor(1), th.SeriesColor(n+1))
}

func TestDefaultThemeIsFresh(t *testing.T) {
	a := plllots.DefaultTheme()
	a.SeriesColors[0] = plllots.Black
	a.Line.Stroke.Width = 99

	b := plllots.DefaultTheme()
	require.NotEqual(t, plllots.Black, b.SeriesColors[0])
	require.Equal(t, 2.0, b.Line.Stroke.Width)
}

func TestDecodeTheme(t *testing.T) {
	th, err := plllots.DecodeTheme(strings.NewReader(`
value_axis:
  grid:
    color: "#cccccc"
  labels:
    font_size: 14
line:
  show_symbols: false
  stroke:
    width: 3
series_colors: ["#111", "#222222"]
`))
	require.NoError(t, err)

	def := plllots.DefaultTheme()

	require.Equal(t, plllots.MustParseColor("#cccccc"), th.ValueAxis.Grid.Color)
	require.Equal(t, def.ValueAxis.Grid.Show, th.ValueAxis.Grid.Show)
	require.Equal(t, 14.0, th.ValueAxis.Labels.FontSize)
	require.Equal(t, def.ValueAxis.Labels.Margin, th.ValueAxis.Labels.Margin)
	require.Equal(t, def.CategoryAxis, th.CategoryAxis)

	require.False(t, th.Line.ShowSymbols)
	require.Equal(t, 3.0, th.Line.Stroke.Width)
	require.Equal(t, plllots.CapRound, th.Line.Stroke.Cap)

	require.Equal(t, []plllots.Color{
		plllots.RGB(0x11, 0x11, 0x11),
		plllots.RGB(0x22, 0x22, 0x22),
	}, th.SeriesColors)
}

func TestDecodeThemeEmpty(t *testing.T) {
	th, err := plllots.DecodeTheme(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, plllots.DefaultTheme(), th)
}

func TestDecodeThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "line:\n  colour: red\n"},
		{"bad color", "series_colors: [blue]\n"},
		{"bad cap", "line:\n  stroke:\n    cap: pointy\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plllots.DecodeTheme(strings.NewReader(tt.doc))
			require.ErrorContains(t, err, "failed to parse theme")
		})
	}
}

func TestDecodeThemeInvalid(t *testing.T) {
	_, err := plllots.DecodeTheme(strings.NewReader("series_colors: []\n"))
	require.ErrorIs(t, err, plllots.ErrConfig)

	var cfgErr *plllots.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, plllots.ComponentTheme, cfgErr.Component)
}

func TestEncodeThemeRoundTrip(t *testing.T) {
	want := plllots.DefaultTheme()
	want.Scatter.Radius = 7
	want.ValueAxis.Labels.Rotation = 45

	var buf bytes.Buffer
	require.NoError(t, plllots.EncodeTheme(&buf, want))

	got, err := plllots.DecodeTheme(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
