// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"math"
	"strconv"
	"strings"
)

// TickmarkPrecision returns an appropriate precision value for label
// formatting.
func TickmarkPrecision(div float64) int {
	return int(math.Max(-math.Floor(math.Log10(div)), 0))
}

// FormatTick renders a tick value as a plain number. The step decides how
// many fractional digits are kept, so accumulated floating error such as
// 0.015000000000000001 prints as "0.015".
func FormatTick(v, step float64) string {
	if !(step > 0) || !finite(step) {
		return trimZeros(strconv.FormatFloat(v, 'f', -1, 64))
	}

	// One extra digit covers the half steps 1.5 and 7.5.
	prec := TickmarkPrecision(step) + 1
	return trimZeros(strconv.FormatFloat(v, 'f', prec, 64))
}

func trimZeros(s string) string {
	if strings.ContainsRune(s, '.') {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
