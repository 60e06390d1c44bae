// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Scale is the resolved range and tick step of a value axis.
type Scale struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// niceSteps are the normalized tick steps, in increasing order. The last
// entry bounds every normalized step in [1, 10).
var niceSteps = [...]float64{1, 1.5, 2, 3, 5, 7.5, 10}

const targetTickIntervals = 6

// ScaleDetails returns axis bounds and a tick step for data spanning
// [min, max]. The bounds always include zero for one-signed data and
// bracket the data with a small margin, with the step snapped to one of
// 1, 1.5, 2, 3, 5 or 7.5 times a power of ten.
//
// Arguments given in the wrong order are swapped. An all-zero range yields
// {-1, 1, 1}. Data close to the float64 limits can still round out to
// infinite bounds; such a Scale has no ticks.
func ScaleDetails(min, max float64) Scale {
	if min > max {
		min, max = max, min
	}

	epsilon := span(min, max, 1e6)
	if max < 0 {
		max = 0
	} else {
		max += epsilon
	}
	if min > 0 {
		min = 0
	} else {
		min -= epsilon
	}

	if max == min {
		return Scale{Min: min - 1, Max: max + 1, Step: 1}
	}

	rough := span(min, max, targetTickIntervals)
	exp := int(math.Floor(math.Log10(math.Abs(rough))))

	var normalized float64
	power := math.Pow10(-exp)
	if math.IsInf(power, 0) {
		// 10^-exp overflows for subnormal steps.
		normalized = rough / math.Pow10(exp)
	} else {
		normalized = rough * power
	}

	candidate := niceSteps[len(niceSteps)-1]
	for _, s := range niceSteps {
		if s >= normalized {
			candidate = s
			break
		}
	}

	var step float64
	if math.IsInf(power, 0) {
		step = candidate * math.Pow10(exp)
	} else {
		step = candidate / power
	}

	return Scale{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
}

// span returns (max-min)/div without overflowing when max-min exceeds the
// float64 range.
func span(min, max, div float64) float64 {
	if d := max - min; !math.IsInf(d, 0) {
		return d / div
	}
	return max/div - min/div
}

// RawRange returns the smallest and largest value across every slice. ok is
// false when the slices hold no values.
func RawRange(values ...[]float64) (min, max float64, ok bool) {
	var s stats.StreamStats
	for _, vs := range values {
		for _, v := range vs {
			s.Add(v)
		}
	}
	if s.Count == 0 {
		return 0, 0, false
	}

	return s.Min, s.Max, true
}

// maxTickCount bounds TickCount for hand-built scales with a step far
// smaller than their range.
const maxTickCount = 1 << 16

// TickCount returns the number of ticks from s.Min to s.Max inclusive, or 0
// when the scale is not finite, is inverted or would need more than
// maxTickCount ticks.
func (s Scale) TickCount() int {
	if !finite(s.Min) || !finite(s.Max) || !finite(s.Step) {
		return 0
	}
	if !(s.Step > 0) || s.Max < s.Min {
		return 0
	}

	intervals := (s.Max - s.Min) / s.Step
	if math.IsInf(intervals, 0) {
		intervals = s.Max/s.Step - s.Min/s.Step
	}
	if !(intervals < maxTickCount) {
		return 0
	}

	return int(math.Ceil(intervals-1e-9)) + 1
}

// Ticks returns the tick values Min + Step*j for every tick.
func (s Scale) Ticks() []float64 {
	ticks := make([]float64, s.TickCount())
	for j := range ticks {
		ticks[j] = s.Min + s.Step*float64(j)
	}
	return ticks
}

// Contains reports whether v lies within [Min, Max].
func (s Scale) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}
