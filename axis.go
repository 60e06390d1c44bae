// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"fmt"
)

// AxisKind distinguishes category axes from value axes.
type AxisKind uint8

const (
	KindCategory AxisKind = iota
	KindValue
)

var axisKindNames = []string{"category", "value"}

func (k AxisKind) String() string {
	return enumName(axisKindNames, k)
}

func (k AxisKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AxisKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseEnum[AxisKind]("axis kind", axisKindNames, string(text))
	return
}

// AxisLineStyle overrides the theme's axis line. Nil fields inherit.
type AxisLineStyle struct {
	Show   *bool   `yaml:"show"`
	Stroke *Stroke `yaml:"stroke"`
	Color  *Color  `yaml:"color"`
}

// TicksStyle overrides the theme's ticks. Nil fields inherit.
type TicksStyle struct {
	Show   *bool    `yaml:"show"`
	Length *float64 `yaml:"length"`
	Stroke *Stroke  `yaml:"stroke"`
	Color  *Color   `yaml:"color"`
}

// GridStyle overrides the theme's split lines. Nil fields inherit.
type GridStyle struct {
	Show   *bool   `yaml:"show"`
	Stroke *Stroke `yaml:"stroke"`
	Color  *Color  `yaml:"color"`
}

// LabelsStyle overrides the theme's labels. Nil fields inherit. Align has
// no theme default: X axes center their labels and Y axes anchor them
// against the axis.
type LabelsStyle struct {
	Show     *bool      `yaml:"show"`
	Color    *Color     `yaml:"color"`
	FontSize *float64   `yaml:"font_size"`
	Margin   *float64   `yaml:"margin"`
	Rotation *float64   `yaml:"rotation"`
	Align    *Alignment `yaml:"align"`
}

// AxisStyle is the display configuration shared by every axis kind.
//
// Position defaults by index parity: even indices sit on the Start side
// and odd ones on the End side. Offset is the outward distance from the
// plot area and defaults to (index/2) times the theme's AutoOffset.
type AxisStyle struct {
	Position *AxisPosition `yaml:"position"`
	Offset   *float64      `yaml:"offset"`
	AxisLine AxisLineStyle `yaml:"axis_line"`
	Ticks    TicksStyle    `yaml:"ticks"`
	Grid     GridStyle     `yaml:"grid"`
	Labels   LabelsStyle   `yaml:"labels"`
}

// CategoryAxis divides its dimension into one bucket per category.
type CategoryAxis struct {
	AxisStyle  `yaml:",inline"`
	Categories []string `yaml:"categories"`
}

// ValueAxis spans the nice range of the series bound to it.
type ValueAxis struct {
	AxisStyle `yaml:",inline"`
}

// Axes is the set of axes along one dimension. All axes in a set share a
// kind.
type Axes interface {
	Kind() AxisKind
	Len() int
	style(index int) *AxisStyle
}

type CategoryAxes []CategoryAxis

func (CategoryAxes) Kind() AxisKind {
	return KindCategory
}

func (a CategoryAxes) Len() int {
	return len(a)
}

func (a CategoryAxes) style(index int) *AxisStyle {
	return &a[index].AxisStyle
}

type ValueAxes []ValueAxis

func (ValueAxes) Kind() AxisKind {
	return KindValue
}

func (a ValueAxes) Len() int {
	return len(a)
}

func (a ValueAxes) style(index int) *AxisStyle {
	return &a[index].AxisStyle
}

func axesLen(a Axes) int {
	if a == nil {
		return 0
	}
	return a.Len()
}

// axisAppearance is an AxisStyle with every property resolved against the
// theme.
type axisAppearance struct {
	position AxisPosition
	offset   float64
	line     AxisLineTheme
	ticks    TicksTheme
	grid     GridTheme
	labels   LabelsTheme
	align    *Alignment
}

func resolveAxis(s *AxisStyle, th *AxisTheme, index int) axisAppearance {
	return axisAppearance{
		position: resolve(s.Position, pick(index%2 == 0, PositionStart, PositionEnd)),
		offset:   resolve(s.Offset, float64(index/2)*th.AutoOffset),
		line: AxisLineTheme{
			Show:   resolve(s.AxisLine.Show, th.AxisLine.Show),
			Stroke: resolve(s.AxisLine.Stroke, th.AxisLine.Stroke),
			Color:  resolve(s.AxisLine.Color, th.AxisLine.Color),
		},
		ticks: TicksTheme{
			Show:   resolve(s.Ticks.Show, th.Ticks.Show),
			Length: resolve(s.Ticks.Length, th.Ticks.Length),
			Stroke: resolve(s.Ticks.Stroke, th.Ticks.Stroke),
			Color:  resolve(s.Ticks.Color, th.Ticks.Color),
		},
		grid: GridTheme{
			Show:   resolve(s.Grid.Show, th.Grid.Show),
			Stroke: resolve(s.Grid.Stroke, th.Grid.Stroke),
			Color:  resolve(s.Grid.Color, th.Grid.Color),
		},
		labels: LabelsTheme{
			Show:     resolve(s.Labels.Show, th.Labels.Show),
			Color:    resolve(s.Labels.Color, th.Labels.Color),
			FontSize: resolve(s.Labels.FontSize, th.Labels.FontSize),
			Margin:   resolve(s.Labels.Margin, th.Labels.Margin),
			Rotation: resolve(s.Labels.Rotation, th.Labels.Rotation),
		},
		align: s.Labels.Align,
	}
}

// axisModel is one axis laid out in pixel space for a render.
type axisModel struct {
	dim   Dimension
	kind  AxisKind
	index int
	look  axisAppearance

	// own runs along the axis, cross along the other dimension.
	own   Offsets
	cross Offsets

	// marks are the tick and split line positions along own.
	marks []float64

	labels    []string
	labelsPos []float64
}

func newCategoryModel(
	dim Dimension,
	index int,
	axis *CategoryAxis,
	theme *Theme,
	own, cross Offsets,
) *axisModel {
	n := len(axis.Categories)
	m := &axisModel{
		dim:       dim,
		kind:      KindCategory,
		index:     index,
		look:      resolveAxis(&axis.AxisStyle, theme.axis(KindCategory), index),
		own:       own,
		cross:     cross,
		marks:     make([]float64, n+1),
		labels:    axis.Categories,
		labelsPos: make([]float64, n),
	}

	for j := range m.marks {
		m.marks[j] = own.At(float64(j) / float64(n))
	}
	proj := NewCategoryProjection(own, n)
	for j := range m.labelsPos {
		m.labelsPos[j] = proj.Project(j, 0)
	}

	return m
}

func newValueModel(
	dim Dimension,
	index int,
	axis *ValueAxis,
	theme *Theme,
	own, cross Offsets,
	scale Scale,
) *axisModel {
	ticks := scale.Ticks()
	m := &axisModel{
		dim:       dim,
		kind:      KindValue,
		index:     index,
		look:      resolveAxis(&axis.AxisStyle, theme.axis(KindValue), index),
		own:       own,
		cross:     cross,
		marks:     make([]float64, len(ticks)),
		labels:    make([]string, len(ticks)),
		labelsPos: make([]float64, len(ticks)),
	}

	proj := NewValueProjection(own, scale)
	for j, v := range ticks {
		m.marks[j] = proj.Project(j, v)
		m.labels[j] = FormatTick(v, scale.Step)
	}
	copy(m.labelsPos, m.marks)

	return m
}

// outward is the pixel direction pointing away from the plot area on the
// axis's side.
func (m *axisModel) outward() float64 {
	if m.look.position == PositionStart {
		return -m.cross.Direction()
	}
	return m.cross.Direction()
}

// base is the cross-dimension pixel the axis is drawn at.
func (m *axisModel) base() float64 {
	edge := pick(m.look.position == PositionStart, m.cross.AxisStart, m.cross.AxisEnd)
	return edge + m.outward()*m.look.offset
}

// point places along on this axis's dimension and across on the other.
func (m *axisModel) point(along, across float64) Point {
	if m.dim == DimX {
		return Point{X: along, Y: across}
	}
	return Point{X: across, Y: along}
}

func (m *axisModel) name() string {
	return fmt.Sprintf("%s axis %d", m.dim, m.index)
}

func (m *axisModel) appendGrid(buf *layers) {
	g := m.look.grid
	if !g.Show {
		return
	}
	for _, p := range m.marks {
		buf.add(LayerGrid, Line{
			Stroke: g.Stroke.clone(),
			Color:  g.Color,
			From:   m.point(p, m.cross.AxisStart),
			To:     m.point(p, m.cross.AxisEnd),
		})
	}
}

func (m *axisModel) appendTicks(buf *layers) {
	t := m.look.ticks
	if !t.Show {
		return
	}
	base := m.base()
	tip := base + m.outward()*t.Length
	for _, p := range m.marks {
		buf.add(LayerTicks, Line{
			Stroke: t.Stroke.clone(),
			Color:  t.Color,
			From:   m.point(p, base),
			To:     m.point(p, tip),
		})
	}
}

func (m *axisModel) appendLabels(buf *layers, measure TextMeasurer) {
	l := m.look.labels
	if !l.Show {
		return
	}

	base := m.base()
	outward := m.outward()
	rot := Rotation(l.Rotation, 0, 0)

	for j, text := range m.labels {
		w, _ := measure.MeasureText(text, l.FontSize)
		extent := rot.Extent(Size{Width: w, Height: l.FontSize})

		var anchor Alignment
		var dist float64
		if m.dim == DimX {
			anchor = resolve(m.look.align, AlignMiddle)
			dist = l.Margin + extent.Height/2
		} else {
			// The anchor nearest the axis keeps the label clear of it.
			near := pick(outward < 0, AlignEnd, AlignStart)
			anchor = resolve(m.look.align, near)
			switch {
			case anchor == near:
				dist = l.Margin
			case anchor == AlignMiddle:
				dist = l.Margin + extent.Width/2
			default:
				dist = l.Margin + extent.Width
			}
		}

		buf.add(LayerLabels, Text{
			Text:     text,
			Color:    l.Color,
			FontSize: l.FontSize,
			Anchor:   anchor,
			Position: m.point(m.labelsPos[j], base+outward*dist),
			Rotation: l.Rotation,
			Extent:   extent,
		})
	}
}

func (m *axisModel) appendAxisLine(buf *layers) {
	a := m.look.line
	if !a.Show {
		return
	}
	base := m.base()
	buf.add(LayerAxisLine, Line{
		Stroke: a.Stroke.clone(),
		Color:  a.Color,
		From:   m.point(m.own.AxisStart, base),
		To:     m.point(m.own.AxisEnd, base),
	})
}

// appendFurniture emits every part of the axis into its layer.
func (m *axisModel) appendFurniture(buf *layers, measure TextMeasurer) {
	m.appendGrid(buf)
	m.appendTicks(buf)
	m.appendLabels(buf, measure)
	m.appendAxisLine(buf)
}
