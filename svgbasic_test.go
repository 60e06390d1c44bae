package plllots_test

import (
	"testing"

	"github.com/kofi-q/plllots-go"
	"github.com/stretchr/testify/require"
)

func TestPathSVGData(t *testing.T) {
	p := plllots.Path{Points: []plllots.Point{{X: 10, Y: 20}, {X: 30.5, Y: 40}, {X: 50, Y: -1}}}
	require.Equal(t, "M10 20L30.5 40L50 -1", p.SVGData())
	require.Empty(t, plllots.Path{}.SVGData())
}

func TestPathSegments(t *testing.T) {
	p := plllots.Path{Points: []plllots.Point{{X: 80, Y: 540}, {X: 125.71428571428571, Y: 124}}}
	require.Equal(t, []plllots.PathSegment{
		{Cmd: 'M', Arg: [2]float64{80, 540}},
		{Cmd: 'L', Arg: [2]float64{125.71428571428571, 124}},
	}, p.Segments())
}

func TestFormatPathData(t *testing.T) {
	tests := []struct {
		segs []plllots.PathSegment
		want string
	}{
		{
			segs: []plllots.PathSegment{
				{Cmd: 'M', Arg: [2]float64{0, 0}},
				{Cmd: 'H', Arg: [2]float64{10}},
				{Cmd: 'V', Arg: [2]float64{5}},
				{Cmd: 'Z'},
			},
			want: "M0 0H10V5Z",
		},
		{
			segs: []plllots.PathSegment{
				{Cmd: 'm', Arg: [2]float64{1.5, -2}},
				{Cmd: 'l', Arg: [2]float64{3, 4}},
				{Cmd: 'h', Arg: [2]float64{-0.25}},
				{Cmd: 'z'},
			},
			want: "m1.5 -2l3 4h-0.25z",
		},
		{want: ""},
	}

	for _, tt := range tests {
		if got := plllots.FormatPathData(tt.segs); got != tt.want {
			t.Errorf("FormatPathData(%v) = %q, want %q", tt.segs, got, tt.want)
		}
	}
}
