package geowords

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchChunk is the number of items each worker handles per task.
const batchChunk = 1024

// EncodeBatch encodes every location. Work is spread over GOMAXPROCS
// workers; the first failure cancels the rest and is returned with the index
// of the offending item.
func (c *Codec) EncodeBatch(ctx context.Context, locs []Location) ([]Name, error) {
	out := make([]Name, len(locs))
	err := runChunks(ctx, len(locs), func(i int) error {
		n, err := c.Encode(locs[i].Lat, locs[i].Lng)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeBatch decodes every name, with the same failure rules as EncodeBatch.
func (c *Codec) DecodeBatch(ctx context.Context, names []Name) ([]Location, error) {
	out := make([]Location, len(names))
	err := runChunks(ctx, len(names), func(i int) error {
		l, err := c.DecodeName(names[i])
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// runChunks calls fn for every index in [0, n). Each index is visited by
// exactly one goroutine.
func runChunks(ctx context.Context, n int, fn func(i int) error) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < n; start += batchChunk {
		end := min(start+batchChunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
