// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lttb reduces dense series with the Largest-Triangle-Three-Buckets
// algorithm described by Sveinn Steinarsson in "Downsampling Time Series for
// Visual Representation" (University of Iceland, 2013):
// https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
//
// Sums and areas are computed four lanes at a time. Centroids are therefore
// reduced pairwise, which may differ from a strictly sequential sum in the
// last bits; every entry point shares that lane order, so the same input
// always selects the same points.
package lttb

import (
	"math"
)

// Passthrough reports whether a series of n points is returned unchanged
// for the given threshold.
func Passthrough(n, threshold int) bool {
	return threshold == 0 || threshold >= n || n <= 2
}

// Indices returns the ascending positions of the points kept when reducing
// the series (xs[i], ys[i]) to threshold points. The first and last points
// are always kept. When the series needs no reduction every position is
// returned. Thresholds of 1 and 2 keep only the endpoints.
//
// Only the first min(len(xs), len(ys)) points are considered.
func Indices(xs, ys []float64, threshold int) []int {
	n := min(len(xs), len(ys))
	if Passthrough(n, threshold) {
		return identity(n)
	}
	if threshold < 3 {
		return []int{0, n - 1}
	}

	b := newBuckets(n, threshold)
	cx, cy := make([]float64, b.count), make([]float64, b.count)
	b.centroids(xs, ys, cx, cy, 0, b.count)

	return b.choose(xs, ys, cx, cy)
}

// Downsample reduces the series to threshold points and returns the kept
// coordinates. When no reduction is needed the input slices are returned
// as they are.
func Downsample(xs, ys []float64, threshold int) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	if Passthrough(n, threshold) {
		return xs, ys
	}

	kept := Indices(xs, ys, threshold)
	return Gather(xs, kept), Gather(ys, kept)
}

// Gather returns vs[i] for every index.
func Gather(vs []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for j, i := range indices {
		out[j] = vs[i]
	}
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// buckets partitions the interior points 1..n-2 into count buckets of
// width every.
type buckets struct {
	n     int
	count int
	every float64
}

func newBuckets(n, threshold int) buckets {
	return buckets{
		n:     n,
		count: threshold - 2,
		every: float64(n-2) / float64(threshold-2),
	}
}

// bounds returns the half-open point range of bucket i.
func (b buckets) bounds(i int) (lo, hi int) {
	lo = int(float64(i)*b.every) + 1
	hi = min(int(float64(i+1)*b.every)+1, b.n-1)
	return
}

// next returns the half-open range averaged when choosing from bucket i:
// the following bucket, or the last point for the final bucket.
func (b buckets) next(i int) (lo, hi int) {
	lo = int(float64(i+1)*b.every) + 1
	hi = min(int(float64(i+2)*b.every)+1, b.n)
	return
}

// centroids fills cx[i], cy[i] for buckets [from, to).
func (b buckets) centroids(xs, ys, cx, cy []float64, from, to int) {
	for i := from; i < to; i++ {
		lo, hi := b.next(i)
		cx[i] = mean(xs[lo:hi])
		cy[i] = mean(ys[lo:hi])
	}
}

// choose walks the buckets in order, keeping in each the point forming the
// largest triangle with the previously kept point and the next centroid.
func (b buckets) choose(xs, ys, cx, cy []float64) []int {
	kept := make([]int, 0, b.count+2)
	kept = append(kept, 0)

	a := 0
	for i := range b.count {
		lo, hi := b.bounds(i)
		a = largestTriangle(xs, ys, a, lo, hi, cx[i], cy[i])
		kept = append(kept, a)
	}

	return append(kept, b.n-1)
}

// largestTriangle returns the index in [lo, hi) maximizing the triangle
// area with the point a and the centroid (cx, cy). Ties keep the earliest
// index.
func largestTriangle(xs, ys []float64, a, lo, hi int, cx, cy float64) int {
	ax, ay := xs[a], ys[a]
	dx, dy := ax-cx, cy-ay

	best, bestArea := lo, -1.0
	var area [4]float64
	i := lo
	for ; i+4 <= hi; i += 4 {
		for l := range area {
			area[l] = math.Abs(dx*(ys[i+l]-ay)-(ax-xs[i+l])*dy) * 0.5
		}
		for l, v := range area {
			if v > bestArea {
				best, bestArea = i+l, v
			}
		}
	}
	for ; i < hi; i++ {
		v := math.Abs(dx*(ys[i]-ay)-(ax-xs[i])*dy) * 0.5
		if v > bestArea {
			best, bestArea = i, v
		}
	}

	return best
}

func mean(vs []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(vs); i += 4 {
		s0 += vs[i]
		s1 += vs[i+1]
		s2 += vs[i+2]
		s3 += vs[i+3]
	}
	for ; i < len(vs); i++ {
		s0 += vs[i]
	}

	return ((s0 + s1) + (s2 + s3)) / float64(len(vs))
}
