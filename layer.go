// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
 * Copyright (c) 2014 Kurt Jung (Gmail: kurt.w.jung)
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

// Layer is a drawing stage. Primitives of a later layer are drawn on top of
// those of earlier ones.
type Layer uint8

const (
	LayerGrid Layer = iota
	LayerTicks
	LayerLabels
	LayerSeries
	LayerAxisLine

	layerCount
)

var layerNames = []string{"grid", "ticks", "labels", "series", "axis_line"}

func (l Layer) String() string {
	return enumName(layerNames, l)
}

// layers collects primitives per layer while a chart is generated.
type layers struct {
	list [layerCount][]Primitive
}

func (b *layers) add(l Layer, p Primitive) {
	b.list[l] = append(b.list[l], p)
}

// len returns the number of primitives in layer l.
func (b *layers) len(l Layer) int {
	return len(b.list[l])
}

// flatten returns every primitive, layer by layer, keeping insertion order
// within a layer.
func (b *layers) flatten() []Primitive {
	var n int
	for _, l := range b.list {
		n += len(l)
	}

	out := make([]Primitive, 0, n)
	for _, l := range b.list {
		out = append(out, l...)
	}
	return out
}
