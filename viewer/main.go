package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"pathtracer/pkg/core"
	"pathtracer/pkg/loaders"
)

// toRGBA converts the render buffer for display using the same channel
// quantization as the text codec
func toRGBA(img *core.Image) *image.RGBA {
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
	return out
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: viewer <image file>")
		os.Exit(1)
	}

	img, err := loaders.LoadImage(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Path Tracer")

	display := canvas.NewImageFromImage(toRGBA(img))
	display.FillMode = canvas.ImageFillOriginal

	w.SetContent(display)
	w.Resize(fyne.NewSize(float32(img.Width), float32(img.Height)))
	w.SetFixedSize(true)
	w.CenterOnScreen()
	w.ShowAndRun()
}
