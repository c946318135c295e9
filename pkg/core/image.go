package core

// Image is a rectangular buffer of linear RGB colors. Pixels are stored
// column by column: index = i*Height + j, where i is the horizontal pixel
// index and j counts rows from the top of the image. This order is part of
// the pixel file format and must not change.
type Image struct {
	Width  int
	Height int
	Pix    []Vec3
}

// NewImage creates a zeroed image buffer of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Vec3, width*height),
	}
}

// Index returns the buffer index of pixel (i, j)
func (im *Image) Index(i, j int) int {
	return i*im.Height + j
}

// At returns the color of pixel (i, j)
func (im *Image) At(i, j int) Vec3 {
	return im.Pix[i*im.Height+j]
}

// Set stores the color of pixel (i, j)
func (im *Image) Set(i, j int, c Vec3) {
	im.Pix[i*im.Height+j] = c
}
