// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// AxisLineTheme is the default look of the line an axis is drawn along.
type AxisLineTheme struct {
	Show   bool   `yaml:"show"`
	Stroke Stroke `yaml:"stroke"`
	Color  Color  `yaml:"color"`
}

// TicksTheme is the default look of axis ticks.
type TicksTheme struct {
	Show   bool    `yaml:"show"`
	Length float64 `yaml:"length"`
	Stroke Stroke  `yaml:"stroke"`
	Color  Color   `yaml:"color"`
}

// GridTheme is the default look of split lines running across the plot.
type GridTheme struct {
	Show   bool   `yaml:"show"`
	Stroke Stroke `yaml:"stroke"`
	Color  Color  `yaml:"color"`
}

// LabelsTheme is the default look of axis labels. Margin is the gap between
// the axis and the nearest edge of a label; Rotation is in degrees,
// clockwise.
type LabelsTheme struct {
	Show     bool    `yaml:"show"`
	Color    Color   `yaml:"color"`
	FontSize float64 `yaml:"font_size"`
	Margin   float64 `yaml:"margin"`
	Rotation float64 `yaml:"rotation"`
}

// AxisTheme holds the defaults for one kind of axis. AutoOffset is the
// outward stride between successive axes sharing a side.
type AxisTheme struct {
	AxisLine   AxisLineTheme `yaml:"axis_line"`
	Ticks      TicksTheme    `yaml:"ticks"`
	Grid       GridTheme     `yaml:"grid"`
	Labels     LabelsTheme   `yaml:"labels"`
	AutoOffset float64       `yaml:"auto_offset"`
}

type LineTheme struct {
	Stroke       Stroke  `yaml:"stroke"`
	ShowSymbols  bool    `yaml:"show_symbols"`
	SymbolRadius float64 `yaml:"symbol_radius"`
	SymbolStroke Stroke  `yaml:"symbol_stroke"`
	SymbolFill   Color   `yaml:"symbol_fill"`
}

type ScatterTheme struct {
	Radius      float64 `yaml:"radius"`
	Stroke      Stroke  `yaml:"stroke"`
	StrokeColor Color   `yaml:"stroke_color"`
}

// Theme is the chart-wide fallback for every stylable property.
type Theme struct {
	CategoryAxis AxisTheme    `yaml:"category_axis"`
	ValueAxis    AxisTheme    `yaml:"value_axis"`
	Line         LineTheme    `yaml:"line"`
	Scatter      ScatterTheme `yaml:"scatter"`
	SeriesColors []Color      `yaml:"series_colors"`
}

var (
	axisColor  = Color{0x6e, 0x70, 0x79, 0xff}
	gridColor  = Color{0xe0, 0xe6, 0xf1, 0xff}
	paletteHex = []string{
		"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de",
		"#3ba272", "#fc8452", "#9a60b4", "#ea7ccc",
	}
)

// DefaultTheme returns a new copy of the built-in theme.
func DefaultTheme() *Theme {
	palette := make([]Color, len(paletteHex))
	for i, hex := range paletteHex {
		palette[i] = MustParseColor(hex)
	}

	return &Theme{
		CategoryAxis: AxisTheme{
			AxisLine: AxisLineTheme{Show: true, Stroke: StrokeWidth(1), Color: axisColor},
			Ticks:    TicksTheme{Show: true, Length: 5, Stroke: StrokeWidth(1), Color: axisColor},
			Grid:     GridTheme{Show: false, Stroke: StrokeWidth(1), Color: gridColor},
			Labels: LabelsTheme{
				Show:     true,
				Color:    axisColor,
				FontSize: 12,
				Margin:   8,
			},
			AutoOffset: 60,
		},
		ValueAxis: AxisTheme{
			AxisLine: AxisLineTheme{Show: false, Stroke: StrokeWidth(1), Color: axisColor},
			Ticks:    TicksTheme{Show: true, Length: 5, Stroke: StrokeWidth(1), Color: axisColor},
			Grid:     GridTheme{Show: true, Stroke: StrokeWidth(1), Color: gridColor},
			Labels: LabelsTheme{
				Show:     true,
				Color:    axisColor,
				FontSize: 12,
				Margin:   8,
			},
			AutoOffset: 60,
		},
		Line: LineTheme{
			Stroke:       Stroke{Width: 2, Cap: CapRound, Join: JoinRound},
			ShowSymbols:  true,
			SymbolRadius: 4,
			SymbolStroke: StrokeWidth(2),
			SymbolFill:   White,
		},
		Scatter: ScatterTheme{
			Radius:      5,
			Stroke:      StrokeWidth(1),
			StrokeColor: White,
		},
		SeriesColors: palette,
	}
}

// DecodeTheme reads a YAML theme document. Properties the document leaves
// out keep their DefaultTheme values.
func DecodeTheme(r io.Reader) (*Theme, error) {
	theme := DefaultTheme()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(theme); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, err
	}

	return theme, nil
}

// Validate reports theme values no chart could be drawn with.
func (t *Theme) Validate() error {
	if len(t.SeriesColors) == 0 {
		return configErrorf(ComponentTheme, -1, "series color palette is empty")
	}

	for _, a := range []struct {
		name string
		th   *AxisTheme
	}{
		{"category axis", &t.CategoryAxis},
		{"value axis", &t.ValueAxis},
	} {
		if a.th.Labels.FontSize < 0 {
			return configErrorf(ComponentTheme, -1, "%s label font size %g is negative", a.name, a.th.Labels.FontSize)
		}
		if a.th.AutoOffset < 0 {
			return configErrorf(ComponentTheme, -1, "%s auto offset %g is negative", a.name, a.th.AutoOffset)
		}
	}

	if t.Line.SymbolRadius < 0 || t.Scatter.Radius < 0 {
		return configErrorf(ComponentTheme, -1, "symbol radius is negative")
	}

	return nil
}

// SeriesColor returns the palette color for the series at index, cycling
// through the palette.
func (t *Theme) SeriesColor(index int) Color {
	return t.SeriesColors[index%len(t.SeriesColors)]
}

func (t *Theme) axis(kind AxisKind) *AxisTheme {
	if kind == KindCategory {
		return &t.CategoryAxis
	}
	return &t.ValueAxis
}

// resolve returns the override when it is set, the default otherwise.
func resolve[T any](override *T, def T) T {
	if override != nil {
		return *override
	}
	return def
}
