// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

// PrimitiveKind names the shape of a Primitive.
type PrimitiveKind uint8

const (
	PrimitiveLine PrimitiveKind = iota
	PrimitivePath
	PrimitiveCircle
	PrimitiveMultiCircle
	PrimitiveText
)

var primitiveKindNames = []string{"line", "path", "circle", "multi_circle", "text"}

func (k PrimitiveKind) String() string {
	return enumName(primitiveKindNames, k)
}

func (k PrimitiveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Primitive is a positioned drawing instruction. Primitives hold copies of
// every resolved value and never refer back to the chart that produced
// them.
type Primitive interface {
	Kind() PrimitiveKind

	// AppendTo calls the method of a that matches the primitive's kind.
	AppendTo(a Appender)
}

// Appender is implemented by output backends, such as a vector markup
// writer or a scene graph builder.
type Appender interface {
	AppendLine(Line)
	AppendPath(Path)
	AppendCircle(Circle)
	AppendMultiCircle(MultiCircle)
	AppendText(Text)
}

// AppendAll hands every primitive to a, in order.
func AppendAll(a Appender, prims []Primitive) {
	for _, p := range prims {
		p.AppendTo(a)
	}
}

// Line is a single straight segment.
type Line struct {
	Stroke Stroke `json:"stroke"`
	Color  Color  `json:"color"`
	From   Point  `json:"from"`
	To     Point  `json:"to"`
}

func (Line) Kind() PrimitiveKind {
	return PrimitiveLine
}

func (l Line) AppendTo(a Appender) {
	a.AppendLine(l)
}

// Path is an open polyline through Points.
type Path struct {
	Stroke Stroke  `json:"stroke"`
	Color  Color   `json:"color"`
	Points []Point `json:"points"`
}

func (Path) Kind() PrimitiveKind {
	return PrimitivePath
}

func (p Path) AppendTo(a Appender) {
	a.AppendPath(p)
}

// Circle is a filled and stroked circle.
type Circle struct {
	Center      Point   `json:"center"`
	Radius      float64 `json:"radius"`
	Fill        Color   `json:"fill"`
	Stroke      Stroke  `json:"stroke"`
	StrokeColor Color   `json:"stroke_color"`
}

func (Circle) Kind() PrimitiveKind {
	return PrimitiveCircle
}

func (c Circle) AppendTo(a Appender) {
	a.AppendCircle(c)
}

// MultiCircle is a batch of equally sized and styled circles.
type MultiCircle struct {
	Centers     []Point `json:"centers"`
	Radius      float64 `json:"radius"`
	Fill        Color   `json:"fill"`
	Stroke      Stroke  `json:"stroke"`
	StrokeColor Color   `json:"stroke_color"`
}

func (MultiCircle) Kind() PrimitiveKind {
	return PrimitiveMultiCircle
}

func (m MultiCircle) AppendTo(a Appender) {
	a.AppendMultiCircle(m)
}

// Text is a single-line text run. Position is the anchor point; the run is
// centered vertically on it. Rotation is in degrees, clockwise around
// Position. Extent is the size of the box enclosing the rotated run.
type Text struct {
	Text     string    `json:"text"`
	Color    Color     `json:"color"`
	FontSize float64   `json:"font_size"`
	Anchor   Alignment `json:"anchor"`
	Position Point     `json:"position"`
	Rotation float64   `json:"rotation,omitempty"`
	Extent   Size      `json:"extent"`
}

func (Text) Kind() PrimitiveKind {
	return PrimitiveText
}

func (t Text) AppendTo(a Appender) {
	a.AppendText(t)
}
