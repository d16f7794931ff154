package renderer

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// rowBand is a contiguous range of image rows [Start, End)
type rowBand struct {
	Start int
	End   int
}

// splitRows partitions height rows into at most n contiguous bands of near-equal size
func splitRows(height, n int) []rowBand {
	n = max(1, min(n, height))
	bands := make([]rowBand, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + (height-start)/(n-i)
		bands = append(bands, rowBand{Start: start, End: end})
		start = end
	}
	return bands
}

// renderBands renders every row, one goroutine per band. Bands cover
// disjoint rows so workers write to disjoint ranges of the pixel buffer.
func (rt *Raytracer) renderBands(ctx context.Context, img *Image) (RenderStats, error) {
	bands := splitRows(img.Height, rt.config.NumWorkers())
	results := make([]RenderStats, len(bands))
	var remaining atomic.Int64
	remaining.Store(int64(img.Height))

	renderBand := func(ctx context.Context, index int) error {
		band := bands[index]
		for y := band.Start; y < band.End; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rt.logger.Printf("\rScanlines remaining: %d", remaining.Load())
			results[index].merge(rt.renderRow(img, y))
			remaining.Add(-1)
		}
		return nil
	}

	if len(bands) == 1 {
		if err := renderBand(ctx, 0); err != nil {
			return RenderStats{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i := range bands {
			g.Go(func() error { return renderBand(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return RenderStats{}, err
		}
	}
	rt.logger.Printf("\rScanlines remaining: 0\n")

	var stats RenderStats
	for _, result := range results {
		stats.merge(result)
	}
	return stats, nil
}
