// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"context"

	"github.com/kofi-q/plllots-go/ttf"
	"github.com/sirupsen/logrus"
)

// TextMeasurer returns the advance width and line height, in pixels, of a
// single-line text run set at size pixels.
type TextMeasurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

var _ TextMeasurer = (*ttf.FontSet)(nil)

// Chart is a complete chart description. A Chart is not modified by
// GeneratePrimitives, so one may be rendered from several goroutines at
// once as long as nobody changes it meanwhile.
type Chart struct {
	Size             Size
	Margins          Margins
	CoordinateSystem CoordinateSystem

	// Theme defaults to DefaultTheme().
	Theme *Theme

	// Measurer defaults to ttf.Default().
	Measurer TextMeasurer

	// Logger defaults to logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Workers above 1 spread the reduction of large series over that many
	// goroutines.
	Workers int
}

// NewChart returns a chart of the given pixel size with the default margins
// and theme.
func NewChart(width, height float64, cs CoordinateSystem) *Chart {
	return &Chart{
		Size:             Size{Width: width, Height: height},
		Margins:          DefaultMargins(),
		CoordinateSystem: cs,
		Theme:            DefaultTheme(),
	}
}

// GeneratePrimitives lays out the chart. Primitives are ordered grid lines
// first, then ticks, labels, series geometry and finally axis lines, so
// each is meant to be drawn over the ones before it.
//
// Configuration problems are reported as a *ConfigError.
func (c *Chart) GeneratePrimitives() ([]Primitive, error) {
	return c.GeneratePrimitivesContext(context.Background())
}

// GeneratePrimitivesContext is GeneratePrimitives with a context that can
// cancel the reduction of large series.
func (c *Chart) GeneratePrimitivesContext(ctx context.Context) ([]Primitive, error) {
	if c.CoordinateSystem == nil {
		return nil, configErrorf(ComponentAxisPair, -1, "chart has no coordinate system")
	}

	x, y, err := c.Margins.Offsets(c.Size)
	if err != nil {
		return nil, err
	}

	r := &render{
		ctx:     ctx,
		x:       x,
		y:       y,
		theme:   c.Theme,
		measure: c.Measurer,
		log:     c.Logger,
		workers: c.Workers,
	}
	if r.theme == nil {
		r.theme = DefaultTheme()
	}
	if r.measure == nil {
		r.measure = ttf.Default()
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}

	if err := r.theme.Validate(); err != nil {
		return nil, err
	}

	var buf layers
	if err := c.CoordinateSystem.appendPrimitives(r, &buf); err != nil {
		return nil, err
	}

	fields := logrus.Fields{}
	for l := range layerCount {
		fields[l.String()] = buf.len(l)
	}
	r.log.WithFields(fields).Debug("generated primitives")

	return buf.flatten(), nil
}
