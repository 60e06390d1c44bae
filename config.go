// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// chartDocument is the YAML form of a Chart:
//
//	size: {width: 800, height: 400}
//	margins: {left: 10%, top: 60}
//	x_axes:
//	  kind: category
//	  axes:
//	    - categories: [Mon, Tue, Wed]
//	y_axes:
//	  kind: value
//	series:
//	  - kind: line
//	    data: {values: [[150, 230, 224]]}
type chartDocument struct {
	Size    Size             `yaml:"size"`
	Margins Margins          `yaml:"margins"`
	Workers int              `yaml:"workers"`
	Theme   yaml.Node        `yaml:"theme"`
	XAxes   axesDocument     `yaml:"x_axes"`
	YAxes   axesDocument     `yaml:"y_axes"`
	Series  []seriesDocument `yaml:"series"`
}

type axesDocument struct {
	Kind AxisKind  `yaml:"kind"`
	Axes yaml.Node `yaml:"axes"`
}

func (d *axesDocument) decode() (Axes, error) {
	present := d.Axes.Kind != 0

	switch d.Kind {
	case KindCategory:
		var axes CategoryAxes
		if present {
			if err := decodeStrict(&d.Axes, &axes); err != nil {
				return nil, err
			}
		}
		return axes, nil
	case KindValue:
		axes := ValueAxes{{}}
		if present {
			axes = nil
			if err := decodeStrict(&d.Axes, &axes); err != nil {
				return nil, err
			}
		}
		return axes, nil
	}

	return nil, fmt.Errorf("unknown axis kind %v", d.Kind)
}

type seriesDocument struct {
	series Series
}

func (d *seriesDocument) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Kind SeriesKind `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	switch head.Kind {
	case SeriesLine:
		var doc struct {
			Kind       SeriesKind `yaml:"kind"`
			LineSeries `yaml:",inline"`
		}
		if err := decodeStrict(node, &doc); err != nil {
			return err
		}
		d.series = &doc.LineSeries
	case SeriesScatter:
		var doc struct {
			Kind          SeriesKind `yaml:"kind"`
			ScatterSeries `yaml:",inline"`
		}
		if err := decodeStrict(node, &doc); err != nil {
			return err
		}
		d.series = &doc.ScatterSeries
	default:
		return fmt.Errorf("line %d: unknown series kind %v", node.Line, head.Kind)
	}

	return nil
}

// decodeStrict decodes node into out, rejecting mapping keys out has no
// field for. yaml.Node.Decode does not carry the KnownFields setting of the
// decoder that produced the node.
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// DecodeChart reads a YAML chart document. Margins and theme properties the
// document leaves out keep their defaults.
func DecodeChart(r io.Reader) (*Chart, error) {
	doc := chartDocument{Margins: DefaultMargins()}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse chart: empty document")
		}
		return nil, fmt.Errorf("failed to parse chart: %w", err)
	}

	theme := DefaultTheme()
	if doc.Theme.Kind != 0 {
		if err := decodeStrict(&doc.Theme, theme); err != nil {
			return nil, fmt.Errorf("failed to parse chart theme: %w", err)
		}
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	xAxes, err := doc.XAxes.decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart x axes: %w", err)
	}
	yAxes, err := doc.YAxes.decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart y axes: %w", err)
	}

	cs := &Cartesian{
		XAxes:  xAxes,
		YAxes:  yAxes,
		Series: make([]Series, len(doc.Series)),
	}
	for i, s := range doc.Series {
		cs.Series[i] = s.series
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	return &Chart{
		Size:             doc.Size,
		Margins:          doc.Margins,
		CoordinateSystem: cs,
		Theme:            theme,
		Workers:          doc.Workers,
	}, nil
}

// EncodeTheme writes t as a YAML theme document that DecodeTheme accepts.
func EncodeTheme(w io.Writer, t *Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return enc.Close()
}
