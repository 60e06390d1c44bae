// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lttb

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk is the fewest buckets handed to one worker.
const minChunk = 256

// IndicesParallel returns the same positions as Indices. Bucket centroids
// are computed by up to workers goroutines; the selection pass that depends
// on the previously kept point stays sequential.
func IndicesParallel(
	ctx context.Context,
	xs, ys []float64,
	threshold, workers int,
) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := min(len(xs), len(ys))
	if Passthrough(n, threshold) || threshold < 3 || workers < 2 {
		return Indices(xs, ys, threshold), nil
	}

	b := newBuckets(n, threshold)
	cx, cy := make([]float64, b.count), make([]float64, b.count)

	chunk := max((b.count+workers-1)/workers, minChunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for from := 0; from < b.count; from += chunk {
		to := min(from+chunk, b.count)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.centroids(xs, ys, cx, cy, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return b.choose(xs, ys, cx, cy), nil
}
