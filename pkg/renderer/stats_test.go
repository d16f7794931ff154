package renderer

import "testing"

func TestRenderStats_Merge(t *testing.T) {
	var stats RenderStats
	stats.merge(RenderStats{TotalPixels: 10, Hits: 4, Misses: 6})
	stats.merge(RenderStats{TotalPixels: 10, Hits: 1, Misses: 9})

	if stats.TotalPixels != 20 || stats.Hits != 5 || stats.Misses != 15 {
		t.Errorf("Unexpected merged stats: %+v", stats)
	}
	if ratio := stats.HitRatio(); ratio != 0.25 {
		t.Errorf("Expected hit ratio 0.25, got %f", ratio)
	}
}

func TestRenderStats_HitRatioEmpty(t *testing.T) {
	if ratio := (RenderStats{}).HitRatio(); ratio != 0 {
		t.Errorf("Expected 0 for empty stats, got %f", ratio)
	}
}
