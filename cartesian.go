// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"context"

	"github.com/aclements/go-moremath/stats"
	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"
)

// CoordinateSystem lays out axes and series in the plot area of a chart.
type CoordinateSystem interface {
	appendPrimitives(r *render, buf *layers) error
}

// Cartesian pairs every X axis with every Y axis. Each series is drawn
// against the pair its axis indices select.
//
// Both axis sets must be non-empty, and at least one of them must hold
// value axes.
type Cartesian struct {
	XAxes  Axes
	YAxes  Axes
	Series []Series
}

// render is the state shared by one GeneratePrimitives call.
type render struct {
	ctx     context.Context
	x, y    Offsets
	theme   *Theme
	measure TextMeasurer
	log     logrus.FieldLogger
	workers int
}

func (r *render) offsets(dim Dimension) Offsets {
	if dim == DimX {
		return r.x
	}
	return r.y
}

func (c *Cartesian) axes(dim Dimension) Axes {
	if dim == DimX {
		return c.XAxes
	}
	return c.YAxes
}

func seriesAxis(s Series, dim Dimension) int {
	x, y := s.AxisIndices()
	if dim == DimX {
		return x
	}
	return y
}

// Validate reports the first axis, axis pairing or series that cannot be
// drawn.
func (c *Cartesian) Validate() error {
	for _, dim := range []Dimension{DimX, DimY} {
		axes := c.axes(dim)
		if axesLen(axes) == 0 {
			return configErrorf(axisComponent(dim), -1, "no axes configured")
		}

		if cat, ok := axes.(CategoryAxes); ok {
			for i := range cat {
				if len(cat[i].Categories) == 0 {
					return configErrorf(axisComponent(dim), i, "category axis has no labels")
				}
			}
		}
	}

	xKind, yKind := c.XAxes.Kind(), c.YAxes.Kind()
	if xKind == KindCategory && yKind == KindCategory {
		return configErrorf(
			ComponentAxisPair, -1,
			"category x axes cannot be paired with category y axes",
		)
	}

	for si, s := range c.Series {
		if s == nil {
			return configErrorf(ComponentSeries, si, "series is nil")
		}

		for _, dim := range []Dimension{DimX, DimY} {
			n := c.axes(dim).Len()
			if idx := seriesAxis(s, dim); idx < 0 || idx >= n {
				return configErrorf(
					ComponentSeries, si,
					"%s axis index %d out of range (%d axes)", dim, idx, n,
				)
			}
		}

		if s.sampleThreshold() < 0 {
			return configErrorf(
				ComponentSeries, si,
				"sample threshold %d is negative", s.sampleThreshold(),
			)
		}

		if reason := s.seriesData().check(xKind, yKind, s.sizeDim()); reason != "" {
			return configErrorf(ComponentSeries, si, "%s", reason)
		}
	}

	return nil
}

// scales resolves the scale of every value axis along dim from the union of
// the series bound to it. Axes without bound series are left unset in the
// returned bitset.
func (c *Cartesian) scales(r *render, dim Dimension) ([]Scale, *bitset.BitSet, error) {
	axes := c.axes(dim)
	n := axes.Len()
	scales := make([]Scale, n)
	resolved := bitset.New(uint(n))

	if axes.Kind() != KindValue {
		return scales, resolved, nil
	}

	xKind, yKind := c.XAxes.Kind(), c.YAxes.Kind()
	for a := range n {
		var acc stats.StreamStats
		bound := 0
		for _, s := range c.Series {
			if seriesAxis(s, dim) != a {
				continue
			}
			bound++

			xs, ys := s.seriesData().columns(xKind, yKind)
			for _, v := range pick(dim == DimX, xs, ys) {
				acc.Add(v)
			}
		}

		fields := logrus.Fields{"axis": dim.String(), "index": a}
		if bound == 0 {
			r.log.WithFields(fields).Debug("value axis has no bound series, skipping")
			continue
		}
		if acc.Count == 0 {
			return nil, nil, configErrorf(
				axisComponent(dim), a,
				"the %d series bound to this value axis hold no data", bound,
			)
		}

		scales[a] = ScaleDetails(acc.Min, acc.Max)
		if scales[a].TickCount() == 0 {
			return nil, nil, configErrorf(
				axisComponent(dim), a,
				"data range [%g, %g] is too wide for a finite scale", acc.Min, acc.Max,
			)
		}
		resolved.Set(uint(a))

		r.log.WithFields(fields).WithFields(logrus.Fields{
			"min":  scales[a].Min,
			"max":  scales[a].Max,
			"step": scales[a].Step,
		}).Debug("resolved value axis scale")
	}

	return scales, resolved, nil
}

// models lays out every drawable axis along dim. Value axes without a
// resolved scale are nil.
func (c *Cartesian) models(r *render, dim Dimension) ([]*axisModel, []Projection, error) {
	scales, resolved, err := c.scales(r, dim)
	if err != nil {
		return nil, nil, err
	}

	own, cross := r.offsets(dim), r.offsets(dim.other())
	axes := c.axes(dim)
	models := make([]*axisModel, axes.Len())
	projs := make([]Projection, axes.Len())

	switch axes := axes.(type) {
	case CategoryAxes:
		for i := range axes {
			models[i] = newCategoryModel(dim, i, &axes[i], r.theme, own, cross)
			projs[i] = NewCategoryProjection(own, len(axes[i].Categories))
		}
	case ValueAxes:
		for i := range axes {
			if !resolved.Test(uint(i)) {
				continue
			}
			models[i] = newValueModel(dim, i, &axes[i], r.theme, own, cross, scales[i])
			projs[i] = NewValueProjection(own, scales[i])
		}
	}

	return models, projs, nil
}

func (c *Cartesian) appendPrimitives(r *render, buf *layers) error {
	if err := c.Validate(); err != nil {
		return err
	}

	xModels, xProjs, err := c.models(r, DimX)
	if err != nil {
		return err
	}
	yModels, yProjs, err := c.models(r, DimY)
	if err != nil {
		return err
	}

	drawn := [2]*bitset.BitSet{
		bitset.New(uint(len(xModels))),
		bitset.New(uint(len(yModels))),
	}
	draw := func(m *axisModel) {
		if m == nil || drawn[m.dim].Test(uint(m.index)) {
			return
		}
		drawn[m.dim].Set(uint(m.index))
		r.log.WithField("axis", m.name()).Debug("drawing axis")
		m.appendFurniture(buf, r.measure)
	}

	for xi, xm := range xModels {
		for yi, ym := range yModels {
			draw(xm)
			draw(ym)

			if xm == nil || ym == nil {
				r.log.WithFields(logrus.Fields{
					"x_axis": xi,
					"y_axis": yi,
				}).Debug("axis pair has no resolved scale, skipping series")
				continue
			}

			for si, s := range c.Series {
				if sx, sy := s.AxisIndices(); sx != xi || sy != yi {
					continue
				}
				if err := r.ctx.Err(); err != nil {
					return err
				}

				p := &projector{
					ctx:     r.ctx,
					x:       xProjs[xi],
					y:       yProjs[yi],
					xKind:   xm.kind,
					yKind:   ym.kind,
					theme:   r.theme,
					color:   r.theme.SeriesColor(si),
					index:   si,
					workers: r.workers,
					log:     r.log,
				}
				if err := s.appendPrimitives(p, buf); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
