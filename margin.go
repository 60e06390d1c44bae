// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Margin is the distance between a chart edge and the plot area, either in
// pixels or as a percentage of the chart dimension it runs along.
type Margin struct {
	Value   float64
	Percent bool
}

func Pixels(v float64) Margin {
	return Margin{Value: v}
}

func Percent(v float64) Margin {
	return Margin{Value: v, Percent: true}
}

// Resolve converts the margin to pixels for a chart dimension of the given
// extent.
func (m Margin) Resolve(extent float64) float64 {
	if m.Percent {
		return extent * m.Value / 100
	}
	return m.Value
}

func (m Margin) String() string {
	s := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Percent {
		return s + "%"
	}
	return s
}

func (m Margin) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts "60", "60px" or "10%".
func (m *Margin) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid margin %q: %w", text, err)
	}

	*m = Margin{Value: v, Percent: percent}
	return nil
}

// Margins are the four sides around the plot area.
type Margins struct {
	Left   Margin `yaml:"left" json:"left"`
	Top    Margin `yaml:"top" json:"top"`
	Right  Margin `yaml:"right" json:"right"`
	Bottom Margin `yaml:"bottom" json:"bottom"`
}

// DefaultMargins leaves 10% of the width on either side and 60 pixels above
// and below the plot area.
func DefaultMargins() Margins {
	return Margins{
		Left:   Percent(10),
		Top:    Pixels(60),
		Right:  Percent(10),
		Bottom: Pixels(60),
	}
}

// Offsets are the pixel extent of the plot area along one dimension. Start
// is where the axis origin sits: the left edge for X and the bottom edge
// for Y, so a Y Offsets runs from a larger pixel value to a smaller one.
type Offsets struct {
	AxisStart float64
	AxisEnd   float64
	Span      float64
}

// NewOffsets returns the Offsets running from start to end.
func NewOffsets(start, end float64) Offsets {
	return Offsets{
		AxisStart: start,
		AxisEnd:   end,
		Span:      math.Abs(end - start),
	}
}

// Direction is +1 when pixels grow from start to end, -1 otherwise.
func (o Offsets) Direction() float64 {
	if o.AxisEnd < o.AxisStart {
		return -1
	}
	return 1
}

// At maps a fraction of the span to a pixel. At(0) and At(1) return the
// start and end edges exactly.
func (o Offsets) At(frac float64) float64 {
	return (1-frac)*o.AxisStart + frac*o.AxisEnd
}

// Fraction is the inverse of At.
func (o Offsets) Fraction(pixel float64) float64 {
	return (pixel - o.AxisStart) / (o.AxisEnd - o.AxisStart)
}

// Offsets converts the margins to pixel offsets for a chart of the given
// size. A plot area with no positive extent is a configuration error.
func (m Margins) Offsets(size Size) (x, y Offsets, err error) {
	if !finite(size.Width) || !finite(size.Height) {
		return x, y, configErrorf(
			ComponentMargins, -1,
			"chart size %gx%g is not finite", size.Width, size.Height,
		)
	}

	left := m.Left.Resolve(size.Width)
	right := size.Width - m.Right.Resolve(size.Width)
	if !(right > left) {
		return x, y, configErrorf(
			ComponentMargins, -1,
			"horizontal span %g is not positive (left %g, right %g)",
			right-left, left, right,
		)
	}

	bottom := size.Height - m.Bottom.Resolve(size.Height)
	top := m.Top.Resolve(size.Height)
	if !(bottom > top) {
		return x, y, configErrorf(
			ComponentMargins, -1,
			"vertical span %g is not positive (top %g, bottom %g)",
			bottom-top, top, bottom,
		)
	}

	return NewOffsets(left, right), NewOffsets(bottom, top), nil
}
