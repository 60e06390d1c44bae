// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
 * Copyright (c) 2013-2014 Kurt Jung (Gmail: kurt.w.jung)
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package plllots

import (
	"fmt"
	"slices"
	"strings"
)

// Size is a width and height in pixels.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Point is a position in pixel space. The origin is the top-left corner of
// the chart, with Y growing downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// XY returns the X and Y coordinates of the point.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

// Dimension identifies one of the two chart dimensions.
type Dimension uint8

const (
	DimX Dimension = iota
	DimY
)

func (d Dimension) String() string {
	if d == DimX {
		return "x"
	}
	return "y"
}

func (d Dimension) other() Dimension {
	return 1 - d
}

// LineCap is the shape used at the open ends of stroked lines.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

var lineCapNames = []string{"butt", "round", "square"}

func (c LineCap) String() string {
	return enumName(lineCapNames, c)
}

func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *LineCap) UnmarshalText(text []byte) (err error) {
	*c, err = parseEnum[LineCap]("line cap", lineCapNames, string(text))
	return
}

// LineJoin is the shape used where two stroked segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

var lineJoinNames = []string{"miter", "round", "bevel"}

func (j LineJoin) String() string {
	return enumName(lineJoinNames, j)
}

func (j LineJoin) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

func (j *LineJoin) UnmarshalText(text []byte) (err error) {
	*j, err = parseEnum[LineJoin]("line join", lineJoinNames, string(text))
	return
}

// Stroke describes how an outline is drawn.
type Stroke struct {
	Width float64   `yaml:"width" json:"width"`
	Cap   LineCap   `yaml:"cap,omitempty" json:"cap"`
	Join  LineJoin  `yaml:"join,omitempty" json:"join"`
	Dash  []float64 `yaml:"dash,omitempty" json:"dash,omitempty"`
}

// StrokeWidth returns a solid stroke of the given width.
func StrokeWidth(w float64) Stroke {
	return Stroke{Width: w}
}

// clone detaches the dash pattern so emitted primitives never share it with
// the chart description.
func (s Stroke) clone() Stroke {
	s.Dash = slices.Clone(s.Dash)
	return s
}

// Alignment is the horizontal anchor of a text run relative to its
// position.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
)

var alignmentNames = []string{"start", "middle", "end"}

func (a Alignment) String() string {
	return enumName(alignmentNames, a)
}

func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Alignment) UnmarshalText(text []byte) (err error) {
	*a, err = parseEnum[Alignment]("alignment", alignmentNames, string(text))
	return
}

// AxisPosition selects the side of the plot area an axis is drawn on. For X
// axes Start is the bottom edge; for Y axes Start is the left edge.
type AxisPosition uint8

const (
	PositionStart AxisPosition = iota
	PositionEnd
)

var axisPositionNames = []string{"start", "end"}

func (p AxisPosition) String() string {
	return enumName(axisPositionNames, p)
}

func (p AxisPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *AxisPosition) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum[AxisPosition]("axis position", axisPositionNames, string(text))
	return
}

func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func parseEnum[T ~uint8](kind string, names []string, s string) (T, error) {
	for i, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
