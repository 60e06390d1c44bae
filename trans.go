// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"math"
)

// Matrix is an affine transform in pixel space. A point (x, y) maps to
// (A*x + C*y + E, B*x + D*y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a transform moving points by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scaling returns a transform scaling points around the origin. Neither
// factor may be zero for the result to be invertible.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a transform rotating points around the center point
// (x, y). angle is specified in degrees. Since pixel space grows downward,
// positive angles turn clockwise on screen.
func Rotation(angle, x, y float64) Matrix {
	rad := degToRad(angle)
	var tm Matrix
	tm.A = math.Cos(rad)
	tm.B = math.Sin(rad)
	tm.C = -tm.B
	tm.D = tm.A
	tm.E = x - tm.A*x + tm.B*y
	tm.F = y - tm.B*x - tm.A*y
	return tm
}

// Then returns the transform applying m first and n second.
func (m Matrix) Then(n Matrix) Matrix {
	return Matrix{
		A: n.A*m.A + n.C*m.B,
		B: n.B*m.A + n.D*m.B,
		C: n.A*m.C + n.C*m.D,
		D: n.B*m.C + n.D*m.D,
		E: n.A*m.E + n.C*m.F + n.E,
		F: n.B*m.E + n.D*m.F + n.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Extent returns the size of the axis-aligned box enclosing a box of the
// given size after the transform is applied to its corners.
func (m Matrix) Extent(sz Size) Size {
	corners := [4]Point{
		{0, 0},
		{sz.Width, 0},
		{0, sz.Height},
		{sz.Width, sz.Height},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := m.Apply(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	return Size{Width: maxX - minX, Height: maxY - minY}
}
