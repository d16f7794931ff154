package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Hits        int           // Pixels whose ray reached a surface
	Misses      int           // Pixels shaded by the background gradient
	Duration    time.Duration // Wall time spent rendering
}

// HitRatio returns the fraction of pixels that hit a surface
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// merge folds the counts of another band into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.Hits += other.Hits
	s.Misses += other.Misses
}
