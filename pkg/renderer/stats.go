package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples each worker took per pixel
	Workers         int           // Number of worker frames averaged
	MaxDepth        int           // Path recursion depth
	PrimaryRays     int64         // Total camera rays traced across all workers
	Elapsed         time.Duration // Wall-clock render time
}

// String formats the statistics for log output
func (rs RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d samples/pixel x %d workers, depth %d, %d rays in %v",
		rs.Width, rs.Height, rs.SamplesPerPixel, rs.Workers, rs.MaxDepth, rs.PrimaryRays, rs.Elapsed)
}
