// Package bmp writes the tracer's output image to disk as an
// uncompressed 32bpp BMP: a 14-byte file header, a 40-byte info
// header, then bottom-up BGRA rows.
package bmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"pathtracer/imagebuf"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	bytesPerPixel  = 4
)

// WriteFile encodes img as a BMP and writes it to path, creating or
// truncating the file. A positive height in the info header tells
// readers the rows are bottom-up, which matches img's own bottom-left
// origin: no row reversal is needed on the way out.
func WriteFile(path string, img *imagebuf.Image) error {
	pixelDataSize := bytesPerPixel * img.Width * img.Height
	fileSize := fileHeaderSize + infoHeaderSize + pixelDataSize

	buf := new(bytes.Buffer)
	buf.Grow(fileSize)

	buf.WriteString("BM")
	writeLE(buf, uint32(fileSize))
	writeLE(buf, uint16(0)) // reserved1
	writeLE(buf, uint16(0)) // reserved2
	writeLE(buf, uint32(fileHeaderSize+infoHeaderSize))

	writeLE(buf, uint32(infoHeaderSize))
	writeLE(buf, int32(img.Width))
	writeLE(buf, int32(img.Height)) // positive: bottom-up rows
	writeLE(buf, uint16(1))         // planes
	writeLE(buf, uint16(8*bytesPerPixel))
	writeLE(buf, uint32(0)) // compression: none
	writeLE(buf, uint32(pixelDataSize))
	writeLE(buf, int32(0)) // pixels per meter x
	writeLE(buf, int32(0)) // pixels per meter y
	writeLE(buf, uint32(0)) // colours used
	writeLE(buf, uint32(0)) // important colours

	row := make([]byte, bytesPerPixel*img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[img.Width*y+x]
			i := bytesPerPixel * x
			row[i+0] = byte(p)
			row[i+1] = byte(p >> 8)
			row[i+2] = byte(p >> 16)
			row[i+3] = byte(p >> 24)
		}
		buf.Write(row)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("bmp: write %s: %w", path, err)
	}
	return nil
}

func writeLE(buf *bytes.Buffer, v any) {
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		panic(fmt.Sprintf("bmp: in-memory buffer write failed: %v", err))
	}
}

// ReadFile decodes a BMP written by WriteFile. It only understands the
// uncompressed 32bpp, bottom-up shape this package produces.
func ReadFile(path string) (*imagebuf.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bmp: read %s: %w", path, err)
	}
	if len(data) < fileHeaderSize+infoHeaderSize {
		return nil, fmt.Errorf("bmp: %s is too short to contain a header", path)
	}
	if string(data[0:2]) != "BM" {
		return nil, fmt.Errorf("bmp: %s is missing the BM signature", path)
	}

	info := data[fileHeaderSize : fileHeaderSize+infoHeaderSize]
	width := int(int32(binary.LittleEndian.Uint32(info[4:8])))
	height := int(int32(binary.LittleEndian.Uint32(info[8:12])))
	bitsPerPixel := binary.LittleEndian.Uint16(info[14:16])
	compression := binary.LittleEndian.Uint32(info[16:20])

	if bitsPerPixel != 8*bytesPerPixel || compression != 0 {
		return nil, fmt.Errorf("bmp: %s is not uncompressed 32bpp", path)
	}
	if height < 0 {
		return nil, fmt.Errorf("bmp: %s stores top-down rows, unsupported", path)
	}

	offset := fileHeaderSize + infoHeaderSize
	img := imagebuf.NewImage(width, height)
	rowBytes := bytesPerPixel * width
	for y := 0; y < height; y++ {
		row := data[offset+y*rowBytes : offset+(y+1)*rowBytes]
		for x := 0; x < width; x++ {
			i := bytesPerPixel * x
			p := imagebuf.Pixel(row[i]) | imagebuf.Pixel(row[i+1])<<8 | imagebuf.Pixel(row[i+2])<<16 | imagebuf.Pixel(row[i+3])<<24
			img.Set(x, y, p)
		}
	}
	return img, nil
}
