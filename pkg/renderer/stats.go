package renderer

import "time"

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalRows   int           // Number of rows completed
	NumWorkers  int           // Workers that shared the frame
	Elapsed     time.Duration // Wall time for the frame
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}
