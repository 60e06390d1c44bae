package plllots_test

import (
	"image/color"
	"testing"

	"github.com/kofi-q/plllots-go"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want plllots.Color
	}{
		{"#5470c6", plllots.RGB(0x54, 0x70, 0xc6)},
		{"5470C6", plllots.RGB(0x54, 0x70, 0xc6)},
		{"#fff", plllots.White},
		{"#00000080", plllots.Color{A: 0x80}},
	}

	for _, tt := range tests {
		got, err := plllots.ParseColor(tt.in)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#12345", "#gggggg"} {
		_, err := plllots.ParseColor(bad)
		require.Error(t, err, "ParseColor(%q)", bad)
	}
}

func TestMustParseColorPanics(t *testing.T) {
	require.Panics(t, func() {
		plllots.MustParseColor("nope")
	})
}

func TestColorHex(t *testing.T) {
	require.Equal(t, "#5470c6", plllots.RGB(0x54, 0x70, 0xc6).Hex())
	require.Equal(t, "#00000080", plllots.Color{A: 0x80}.Hex())

	text, err := plllots.White.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "#ffffff", string(text))

	var c plllots.Color
	require.NoError(t, c.UnmarshalText([]byte("#ea7ccc")))
	require.Equal(t, plllots.RGB(0xea, 0x7c, 0xcc), c)
}

func TestColorModel(t *testing.T) {
	got := color.NRGBAModel.Convert(plllots.RGB(0x10, 0x20, 0x30))
	require.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, got)
}
