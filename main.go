package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"pathtracer/pkg/loaders"
	"pathtracer/pkg/renderer"
	"pathtracer/pkg/scene"
)

// options holds the parsed command line configuration
type options struct {
	width      int
	height     int
	samples    int
	depth      int
	workers    int
	seed       int64
	sceneName  string
	gridRadius int
	fovDegrees float64
	aperture   float64
	focus      float64
	outFile    string
	pngFile    string
	cpuProfile string
}

func parseFlags() options {
	var opts options
	defaults := renderer.DefaultConfig()

	flag.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	flag.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	flag.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel per worker")
	flag.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum path recursion depth")
	flag.IntVar(&opts.workers, "workers", defaults.Workers, "Number of render workers")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	flag.StringVar(&opts.sceneName, "scene", "field", "Scene to render: 'field' or 'triplet'")
	flag.IntVar(&opts.gridRadius, "grid-radius", scene.DefaultGridRadius, "Half-width of the random sphere grid")
	flag.Float64Var(&opts.fovDegrees, "fov", 20, "Vertical field of view in degrees")
	flag.Float64Var(&opts.aperture, "aperture", 0.1, "Lens aperture")
	flag.Float64Var(&opts.focus, "focus", 10, "Focus distance")
	flag.StringVar(&opts.outFile, "out", "render.txt", "Output image file")
	flag.StringVar(&opts.pngFile, "png", "", "Optional PNG output file")
	flag.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	flag.Parse()

	return opts
}

// renderConfig maps the options onto the renderer configuration
func renderConfig(opts options) renderer.Config {
	return renderer.Config{
		Width:           opts.width,
		Height:          opts.height,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		Workers:         opts.workers,
		Seed:            opts.seed,
	}
}

// cameraConfig maps the options onto the camera, converting the field of
// view to radians and deriving the aspect ratio from the image dimensions
func cameraConfig(opts options) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.VFov = opts.fovDegrees * math.Pi / 180
	config.Aspect = float64(opts.width) / float64(opts.height)
	config.Aperture = opts.aperture
	config.FocusDist = opts.focus
	return config
}

func run(opts options) error {
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	logger := renderer.NewDefaultLogger()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sceneRandom := rand.New(rand.NewSource(seed))

	s, err := scene.Build(opts.sceneName, sceneRandom, opts.gridRadius)
	if err != nil {
		return err
	}
	logger.Printf("Rendering %s scene with %d objects...\n", opts.sceneName, len(s.Objects))

	camera := renderer.NewCamera(cameraConfig(opts))
	r := renderer.NewRenderer(renderConfig(opts), logger)

	img, stats, err := r.Render(s, camera)
	if err != nil {
		return err
	}
	logger.Printf("Render complete: %s\n", stats)

	if err := loaders.SaveImage(opts.outFile, img); err != nil {
		return err
	}
	logger.Printf("Image saved to %s\n", opts.outFile)

	if opts.pngFile != "" {
		if err := loaders.SavePNG(opts.pngFile, img); err != nil {
			return err
		}
		logger.Printf("PNG saved to %s\n", opts.pngFile)
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
