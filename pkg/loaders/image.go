package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"pathtracer/pkg/core"
)

// SaveImage writes an image in the text pixel format: a "width height"
// header line, then one "r g b" line per pixel in buffer order with each
// channel quantized to 0..255.
func SaveImage(filename string, img *core.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d %d\n", img.Width, img.Height)
	for _, c := range img.Pix {
		fmt.Fprintf(w, "%d %d %d\n", int(c.X*255), int(c.Y*255), int(c.Z*255))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// LoadImage reads an image back from the text pixel format, mapping each
// 0..255 channel to [0,1]
func LoadImage(filename string) (*core.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read image header: %w", err)
		}
		return nil, fmt.Errorf("missing image header")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("invalid image header %q", scanner.Text())
	}
	width, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("invalid image width: %w", err)
	}
	height, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("invalid image height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	img := core.NewImage(width, height)
	for idx := range img.Pix {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read pixel %d: %w", idx, err)
			}
			return nil, fmt.Errorf("image file ends after %d of %d pixels", idx, len(img.Pix))
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid pixel line %q", scanner.Text())
		}
		var channels [3]float64
		for k, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid pixel value %q: %w", field, err)
			}
			if value < 0 || value > 255 {
				return nil, fmt.Errorf("pixel value %d out of range", value)
			}
			channels[k] = float64(value) / 255.0
		}
		img.Pix[idx] = core.NewVec3(channels[0], channels[1], channels[2])
	}
	return img, nil
}

// SavePNG exports the image as a PNG file for direct viewing
func SavePNG(filename string, img *core.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width; i++ {
		for j := 0; j < img.Height; j++ {
			c := img.At(i, j)
			out.Set(i, j, color.RGBA{
				R: uint8(c.X * 255),
				G: uint8(c.Y * 255),
				B: uint8(c.Z * 255),
				A: 255,
			})
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, out); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
