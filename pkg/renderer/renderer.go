package renderer

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains image, sampling and concurrency parameters for a render
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Samples per pixel per worker
	MaxDepth        int   // Path recursion depth
	Workers         int   // Independent frames rendered concurrently
	Seed            int64 // Base random seed; 0 seeds from the clock
}

// DefaultConfig returns the standard render parameters
func DefaultConfig() Config {
	return Config{
		Width:           300,
		Height:          200,
		SamplesPerPixel: 128,
		MaxDepth:        20,
		Workers:         8,
	}
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Renderer runs a fork-join render: every worker traces the complete image
// with a private random generator, and the finished frames are averaged
// into the result. Workers never share mutable state, so the whole render
// needs exactly one synchronization point.
type Renderer struct {
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer; a nil logger falls back to stdout
func NewRenderer(config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{config: config, logger: logger}
}

// Render traces the scene through the camera and returns the
// gamma-corrected image
func (r *Renderer) Render(s *scene.Scene, camera *Camera) (*core.Image, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	baseSeed := r.config.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	start := time.Now()
	pt := integrator.NewPathTracer(r.config.MaxDepth)

	frames := make([]*core.Image, r.config.Workers)
	var wg sync.WaitGroup
	for w := 0; w < r.config.Workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			// independent RNG per worker
			seed := baseSeed ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			random := rand.New(rand.NewSource(seed))
			frames[wid] = r.renderFrame(pt, s, camera, random)
			r.logger.Printf("Worker %d: frame complete\n", wid)
		}(w)
	}
	wg.Wait()

	img := r.average(frames)

	stats := RenderStats{
		Width:           r.config.Width,
		Height:          r.config.Height,
		SamplesPerPixel: r.config.SamplesPerPixel,
		Workers:         r.config.Workers,
		MaxDepth:        r.config.MaxDepth,
		PrimaryRays: int64(r.config.Width) * int64(r.config.Height) *
			int64(r.config.SamplesPerPixel) * int64(r.config.Workers),
		Elapsed: time.Since(start),
	}
	return img, stats, nil
}

// renderFrame traces one complete frame. Each sample jitters the pixel
// position by half a pixel on both axes; row 0 is the top of the image.
func (r *Renderer) renderFrame(pt *integrator.PathTracer, s *scene.Scene, camera *Camera, random *rand.Rand) *core.Image {
	width, height := r.config.Width, r.config.Height
	samples := r.config.SamplesPerPixel

	frame := core.NewImage(width, height)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			var sum core.Vec3
			for sample := 0; sample < samples; sample++ {
				u := (float64(i) + random.Float64() - 0.5) / float64(width)
				v := 1.0 - (float64(j)+random.Float64()-0.5)/float64(height)
				ray := camera.GetRay(u, v, random)
				sum = sum.Add(pt.Trace(ray, s, random))
			}
			frame.Set(i, j, sum.Multiply(1.0/float64(samples)))
		}
	}
	return frame
}

// average reduces the worker frames pixelwise and applies gamma 2
func (r *Renderer) average(frames []*core.Image) *core.Image {
	img := core.NewImage(r.config.Width, r.config.Height)
	scale := 1.0 / float64(len(frames))
	for idx := range img.Pix {
		var sum core.Vec3
		for _, frame := range frames {
			sum = sum.Add(frame.Pix[idx])
		}
		img.Pix[idx] = sum.Multiply(scale).Sqrt()
	}
	return img
}
