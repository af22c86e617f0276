// Package imagebuf holds the output framebuffer and the rectangles
// that partition it into independently renderable tiles.
package imagebuf

import "fmt"

// Pixel is a packed BGRA word, little-endian: byte 0 is blue, byte 3
// is alpha. Alpha is always 0xFF; there is no transparency in this
// renderer's output.
type Pixel uint32

// PackRGB packs three already sRGB-encoded channel values, each in
// [0,1], into a Pixel with alpha forced opaque.
func PackRGB(r, g, b float32) Pixel {
	ru := uint32(0xff * r)
	gu := uint32(0xff * g)
	bu := uint32(0xff * b)
	return Pixel(bu | (gu << 8) | (ru << 16) | (0xff << 24))
}

// Image is a contiguous, row-major pixel buffer with origin at the
// bottom-left: row 0 is the bottom row of the output. Every worker
// writes disjoint (x, y) coordinates, assigned by tile partitioning,
// so no synchronization guards Pixels itself.
type Image struct {
	Width, Height int
	Pixels        []Pixel
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]Pixel, width*height)}
}

// Set writes the pixel at (x, y); y counts up from the bottom row.
func (img *Image) Set(x, y int, p Pixel) {
	img.Pixels[img.Width*y+x] = p
}

// Rect is an axis-aligned integer region of an Image: bottom-left
// corner plus width and height.
type Rect struct {
	Left, Bottom, Width, Height int
}

// Tiles partitions an image of the given dimensions into a cols x rows
// grid of equal-sized Rects. width and height must be evenly divisible
// by cols and rows respectively.
func Tiles(width, height, cols, rows int) ([]Rect, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("imagebuf: cols and rows must be positive, got %d x %d", cols, rows)
	}
	if width%cols != 0 || height%rows != 0 {
		return nil, fmt.Errorf("imagebuf: %dx%d image does not divide evenly into a %dx%d tile grid", width, height, cols, rows)
	}

	tileW, tileH := width/cols, height/rows
	tiles := make([]Rect, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			tiles = append(tiles, Rect{
				Left:   tx * tileW,
				Bottom: ty * tileH,
				Width:  tileW,
				Height: tileH,
			})
		}
	}
	return tiles, nil
}
