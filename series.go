// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"context"
	"fmt"
	"slices"

	"github.com/kofi-q/plllots-go/lttb"
	"github.com/sirupsen/logrus"
)

// SeriesKind distinguishes line series from scatter series.
type SeriesKind uint8

const (
	SeriesLine SeriesKind = iota
	SeriesScatter
)

var seriesKindNames = []string{"line", "scatter"}

func (k SeriesKind) String() string {
	return enumName(seriesKindNames, k)
}

func (k SeriesKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SeriesKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseEnum[SeriesKind]("series kind", seriesKindNames, string(text))
	return
}

// SeriesData is a column-major table: Values[d][i] is dimension d of point
// i.
//
// Against a category axis the Primary dimension is plotted on the value
// axis. Against two value axes Secondary is plotted along X and Primary
// along Y.
type SeriesData struct {
	Values    [][]float64 `yaml:"values"`
	Primary   *int        `yaml:"primary"`
	Secondary *int        `yaml:"secondary"`
}

// Values returns single-dimension series data.
func Values(vs ...float64) SeriesData {
	return SeriesData{Values: [][]float64{vs}}
}

// Columns returns multi-dimension series data with the given columns.
func Columns(cols ...[]float64) SeriesData {
	return SeriesData{Values: cols}
}

func (d *SeriesData) primary() int {
	return resolve(d.Primary, 0)
}

func (d *SeriesData) secondary() int {
	return resolve(d.Secondary, 1)
}

// columns returns the data plotted along X and Y for the given axis kinds.
// The column facing a category axis is nil; points are positioned by index
// along it.
func (d *SeriesData) columns(xKind, yKind AxisKind) (xs, ys []float64) {
	prim := d.Values[d.primary()]
	switch {
	case xKind == KindCategory:
		return nil, prim
	case yKind == KindCategory:
		return prim, nil
	default:
		return d.Values[d.secondary()], prim
	}
}

// check reports why the data cannot be plotted against the given axis
// kinds, or "" when it can.
func (d *SeriesData) check(xKind, yKind AxisKind, size *int) string {
	type dimRef struct {
		name string
		idx  int
	}

	dims := []dimRef{{"primary", d.primary()}}
	if xKind == KindValue && yKind == KindValue {
		dims = append(dims, dimRef{"secondary", d.secondary()})
	}
	if size != nil {
		dims = append(dims, dimRef{"size", *size})
	}

	n := -1
	for _, dim := range dims {
		if dim.idx < 0 || dim.idx >= len(d.Values) {
			return fmt.Sprintf(
				"%s dimension %d out of range (%d dimensions)",
				dim.name, dim.idx, len(d.Values),
			)
		}

		col := d.Values[dim.idx]
		if n >= 0 && len(col) != n {
			return fmt.Sprintf(
				"%s dimension has %d points, want %d",
				dim.name, len(col), n,
			)
		}
		n = len(col)

		if i := firstNonFinite(col); i >= 0 {
			return fmt.Sprintf("%s dimension value %d is not finite", dim.name, i)
		}
	}

	if size != nil {
		for i, r := range d.Values[*size] {
			if r < 0 {
				return fmt.Sprintf("size dimension value %d is negative", i)
			}
		}
	}

	return ""
}

// Series is a data set drawn against one X axis and one Y axis.
type Series interface {
	Kind() SeriesKind

	// AxisIndices returns the positions of the bound axes in the chart's
	// X and Y axis sets.
	AxisIndices() (x, y int)

	seriesData() *SeriesData
	sizeDim() *int
	sampleThreshold() int
	appendPrimitives(p *projector, buf *layers) error
}

// LineSeries connects its points with a path and optionally marks each
// point with a symbol. Nil style fields fall back to the theme; a nil Color
// falls back to the palette.
//
// A positive SampleThreshold reduces longer series to that many points.
type LineSeries struct {
	XAxisIndex      int        `yaml:"x_axis_index"`
	YAxisIndex      int        `yaml:"y_axis_index"`
	Data            SeriesData `yaml:"data"`
	SampleThreshold int        `yaml:"sample_threshold"`

	Color             *Color   `yaml:"color"`
	Stroke            *Stroke  `yaml:"stroke"`
	ShowSymbols       *bool    `yaml:"show_symbols"`
	SymbolRadius      *float64 `yaml:"symbol_radius"`
	SymbolStroke      *Stroke  `yaml:"symbol_stroke"`
	SymbolStrokeColor *Color   `yaml:"symbol_stroke_color"`
	SymbolFill        *Color   `yaml:"symbol_fill"`
}

func (*LineSeries) Kind() SeriesKind {
	return SeriesLine
}

func (s *LineSeries) AxisIndices() (x, y int) {
	return s.XAxisIndex, s.YAxisIndex
}

func (s *LineSeries) seriesData() *SeriesData {
	return &s.Data
}

func (*LineSeries) sizeDim() *int {
	return nil
}

func (s *LineSeries) sampleThreshold() int {
	return s.SampleThreshold
}

func (s *LineSeries) appendPrimitives(p *projector, buf *layers) error {
	pts, _, err := p.points(s)
	if err != nil || len(pts) == 0 {
		return err
	}

	th := &p.theme.Line
	color := resolve(s.Color, p.color)

	buf.add(LayerSeries, Path{
		Stroke: resolve(s.Stroke, th.Stroke).clone(),
		Color:  color,
		Points: pts,
	})

	if resolve(s.ShowSymbols, th.ShowSymbols) {
		buf.add(LayerSeries, MultiCircle{
			Centers:     slices.Clone(pts),
			Radius:      resolve(s.SymbolRadius, th.SymbolRadius),
			Fill:        resolve(s.SymbolFill, th.SymbolFill),
			Stroke:      resolve(s.SymbolStroke, th.SymbolStroke).clone(),
			StrokeColor: resolve(s.SymbolStrokeColor, color),
		})
	}

	return nil
}

// ScatterSeries marks each point with a circle. When Size names a data
// dimension, that dimension supplies each circle's radius and every point
// becomes its own Circle; otherwise all points share one MultiCircle.
type ScatterSeries struct {
	XAxisIndex      int        `yaml:"x_axis_index"`
	YAxisIndex      int        `yaml:"y_axis_index"`
	Data            SeriesData `yaml:"data"`
	Size            *int       `yaml:"size"`
	SampleThreshold int        `yaml:"sample_threshold"`

	Color       *Color   `yaml:"color"`
	Radius      *float64 `yaml:"radius"`
	Stroke      *Stroke  `yaml:"stroke"`
	StrokeColor *Color   `yaml:"stroke_color"`
}

func (*ScatterSeries) Kind() SeriesKind {
	return SeriesScatter
}

func (s *ScatterSeries) AxisIndices() (x, y int) {
	return s.XAxisIndex, s.YAxisIndex
}

func (s *ScatterSeries) seriesData() *SeriesData {
	return &s.Data
}

func (s *ScatterSeries) sizeDim() *int {
	return s.Size
}

func (s *ScatterSeries) sampleThreshold() int {
	return s.SampleThreshold
}

func (s *ScatterSeries) appendPrimitives(p *projector, buf *layers) error {
	pts, kept, err := p.points(s)
	if err != nil || len(pts) == 0 {
		return err
	}

	th := &p.theme.Scatter
	fill := resolve(s.Color, p.color)
	stroke := resolve(s.Stroke, th.Stroke)
	strokeColor := resolve(s.StrokeColor, th.StrokeColor)

	if s.Size == nil {
		buf.add(LayerSeries, MultiCircle{
			Centers:     pts,
			Radius:      resolve(s.Radius, th.Radius),
			Fill:        fill,
			Stroke:      stroke.clone(),
			StrokeColor: strokeColor,
		})
		return nil
	}

	sizes := s.Data.Values[*s.Size]
	for j, pt := range pts {
		buf.add(LayerSeries, Circle{
			Center:      pt,
			Radius:      sizes[pointIndex(kept, j)],
			Fill:        fill,
			Stroke:      stroke.clone(),
			StrokeColor: strokeColor,
		})
	}

	return nil
}

// parallelMinPoints is the smallest series reduced with several workers.
const parallelMinPoints = 10_000

// projector positions one series against an axis pair.
type projector struct {
	ctx          context.Context
	x, y         Projection
	xKind, yKind AxisKind
	theme        *Theme
	color        Color
	index        int
	workers      int
	log          logrus.FieldLogger
}

// points returns the pixel position of every plotted point. kept holds the
// data index of each point when the series was reduced, nil otherwise.
func (p *projector) points(s Series) (pts []Point, kept []int, err error) {
	xs, ys := s.seriesData().columns(p.xKind, p.yKind)
	n := max(len(xs), len(ys))

	kept, err = p.sample(xs, ys, n, s.sampleThreshold())
	if err != nil {
		return nil, nil, err
	}

	count := n
	if kept != nil {
		count = len(kept)
	}

	pts = make([]Point, count)
	for j := range pts {
		i := pointIndex(kept, j)
		pts[j] = Point{
			X: p.x.Project(i, at(xs, i)),
			Y: p.y.Project(i, at(ys, i)),
		}
	}

	return pts, kept, nil
}

// sample returns the indices LTTB keeps, or nil when every point is drawn.
func (p *projector) sample(xs, ys []float64, n, threshold int) ([]int, error) {
	if threshold <= 0 || lttb.Passthrough(n, threshold) {
		return nil, nil
	}

	if xs == nil {
		xs = indexColumn(n)
	}
	if ys == nil {
		ys = indexColumn(n)
	}

	var kept []int
	if n >= parallelMinPoints && p.workers > 1 {
		var err error
		kept, err = lttb.IndicesParallel(p.ctx, xs, ys, threshold, p.workers)
		if err != nil {
			return nil, fmt.Errorf("unable to downsample series %d: %w", p.index, err)
		}
	} else {
		kept = lttb.Indices(xs, ys, threshold)
	}

	p.log.WithFields(logrus.Fields{
		"series":    p.index,
		"points":    n,
		"threshold": threshold,
		"kept":      len(kept),
	}).Debug("downsampled series")

	return kept, nil
}

func pointIndex(kept []int, j int) int {
	if kept == nil {
		return j
	}
	return kept[j]
}

func at(col []float64, i int) float64 {
	if col == nil {
		return 0
	}
	return col[i]
}

func indexColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = float64(i)
	}
	return col
}
