package main

import (
	"math"
	"path/filepath"
	"testing"

	"pathtracer/pkg/loaders"
	"pathtracer/pkg/scene"
)

func testOptions() options {
	return options{
		width:      300,
		height:     200,
		samples:    128,
		depth:      20,
		workers:    8,
		seed:       42,
		sceneName:  "triplet",
		gridRadius: scene.DefaultGridRadius,
		fovDegrees: 20,
		aperture:   0.1,
		focus:      10,
	}
}

func TestRenderConfigFromOptions(t *testing.T) {
	config := renderConfig(testOptions())

	if config.Width != 300 || config.Height != 200 {
		t.Errorf("Expected 300x200, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != 128 {
		t.Errorf("Expected 128 samples, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth != 20 {
		t.Errorf("Expected depth 20, got %d", config.MaxDepth)
	}
	if config.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", config.Workers)
	}
	if config.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", config.Seed)
	}
}

func TestCameraConfigFromOptions(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		fovDegrees     float64
		expectedVFov   float64
		expectedAspect float64
	}{
		{name: "defaults give the classic view", width: 300, height: 200, fovDegrees: 20, expectedVFov: math.Pi / 9, expectedAspect: 1.5},
		{name: "square image", width: 400, height: 400, fovDegrees: 90, expectedVFov: math.Pi / 2, expectedAspect: 1},
		{name: "wide image", width: 640, height: 360, fovDegrees: 45, expectedVFov: math.Pi / 4, expectedAspect: 16.0 / 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.width = tt.width
			opts.height = tt.height
			opts.fovDegrees = tt.fovDegrees

			config := cameraConfig(opts)
			if math.Abs(config.VFov-tt.expectedVFov) > 1e-12 {
				t.Errorf("Expected vfov %v, got %v", tt.expectedVFov, config.VFov)
			}
			if math.Abs(config.Aspect-tt.expectedAspect) > 1e-12 {
				t.Errorf("Expected aspect %v, got %v", tt.expectedAspect, config.Aspect)
			}
		})
	}
}

func TestRunWritesImage(t *testing.T) {
	tmpDir := t.TempDir()

	opts := testOptions()
	opts.width = 8
	opts.height = 6
	opts.samples = 1
	opts.depth = 2
	opts.workers = 1
	opts.outFile = filepath.Join(tmpDir, "render.txt")
	opts.pngFile = filepath.Join(tmpDir, "render.png")

	if err := run(opts); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	img, err := loaders.LoadImage(opts.outFile)
	if err != nil {
		t.Fatalf("Failed to load rendered image: %v", err)
	}
	if img.Width != 8 || img.Height != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", img.Width, img.Height)
	}
}

func TestRunUnknownScene(t *testing.T) {
	opts := testOptions()
	opts.sceneName = "cornell"
	opts.outFile = filepath.Join(t.TempDir(), "render.txt")

	if err := run(opts); err == nil {
		t.Error("Expected an error for an unknown scene name")
	}
}
