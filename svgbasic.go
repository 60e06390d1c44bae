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

import (
	"strconv"
	"strings"
)

// PathSegment describes a single straight-line path segment. Arg holds x, y
// for 'M' and 'L', a single coordinate for 'H' and 'V', and nothing for 'Z'.
type PathSegment struct {
	Cmd byte // See http://www.w3.org/TR/SVG/paths.html for path command structure
	Arg [2]float64
}

// Segments returns the path as a moveto followed by one lineto per
// remaining point.
func (p Path) Segments() []PathSegment {
	segs := make([]PathSegment, len(p.Points))
	for j, pt := range p.Points {
		segs[j] = PathSegment{Cmd: 'L', Arg: [2]float64{pt.X, pt.Y}}
	}
	if len(segs) > 0 {
		segs[0].Cmd = 'M'
	}
	return segs
}

// SVGData returns the path in SVG path data syntax, e.g. "M10 20L30 40".
func (p Path) SVGData() string {
	return FormatPathData(p.Segments())
}

// FormatPathData writes segments in SVG path data syntax.
func FormatPathData(segs []PathSegment) string {
	var b strings.Builder
	num := func(v float64) {
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, seg := range segs {
		b.WriteByte(seg.Cmd)
		switch seg.Cmd {
		case 'M', 'm', 'L', 'l':
			num(seg.Arg[0])
			b.WriteByte(' ')
			num(seg.Arg[1])
		case 'H', 'h', 'V', 'v':
			num(seg.Arg[0])
		}
	}
	return b.String()
}
