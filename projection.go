// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Projection maps data along one dimension to pixels. Category projections
// use the point index i and ignore v; value projections use v and ignore i.
// Projections are immutable and safe for concurrent use.
type Projection interface {
	Project(i int, v float64) float64

	// Invert maps a pixel back to data space: a fractional bucket position
	// for category projections, a data value for value projections.
	Invert(pixel float64) float64
}

type categoryProjection struct {
	off     Offsets
	buckets float64
}

// NewCategoryProjection places point i at the center of bucket i of
// buckets equal buckets spanning off.
func NewCategoryProjection(off Offsets, buckets int) Projection {
	return categoryProjection{off: off, buckets: float64(buckets)}
}

func (p categoryProjection) Project(i int, _ float64) float64 {
	return p.off.At((float64(i) + 0.5) / p.buckets)
}

func (p categoryProjection) Invert(pixel float64) float64 {
	return p.off.Fraction(pixel)*p.buckets - 0.5
}

type valueProjection struct {
	off Offsets
	lin scale.Linear

	// div pre-scales values when s.Max-s.Min overflows float64.
	div float64
}

// NewValueProjection maps s.Min to off.AxisStart and s.Max to off.AxisEnd.
func NewValueProjection(off Offsets, s Scale) Projection {
	div := 1.0
	if math.IsInf(s.Max-s.Min, 0) {
		div = 2
	}
	return valueProjection{
		off: off,
		lin: scale.Linear{Min: s.Min / div, Max: s.Max / div},
		div: div,
	}
}

func (p valueProjection) Project(_ int, v float64) float64 {
	return p.off.At(p.lin.Map(v / p.div))
}

func (p valueProjection) Invert(pixel float64) float64 {
	return p.lin.Unmap(p.off.Fraction(pixel)) * p.div
}
