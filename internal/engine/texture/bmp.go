package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/bmp"
)

// BMP header layout.
const (
	bmpMagic          = 0x4D42 // "BM"
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpCompressionOff = bmpFileHeaderSize + 16
	bmpBitCountOff    = bmpFileHeaderSize + 14
	biRGB             = 0
)

var (
	// ErrNotBMP is returned when the data does not start with "BM".
	ErrNotBMP = errors.New("not a BMP file")
	// ErrCompressed is returned for BMP files that are not plain RGB.
	ErrCompressed = errors.New("compressed BMP not supported")
	// ErrBitDepth is returned for pixel depths that cannot be uploaded.
	ErrBitDepth = errors.New("unsupported bit depth")
)

// DecodeBMP decodes an uncompressed 24 or 32 bit BMP image.
func DecodeBMP(data []byte) (*image.RGBA, error) {
	if len(data) < bmpFileHeaderSize+bmpInfoHeaderSize {
		return nil, fmt.Errorf("BMP header: %w", ErrTruncated)
	}
	if binary.LittleEndian.Uint16(data[0:2]) != bmpMagic {
		return nil, ErrNotBMP
	}
	if c := binary.LittleEndian.Uint32(data[bmpCompressionOff:]); c != biRGB {
		return nil, fmt.Errorf("compression %d: %w", c, ErrCompressed)
	}
	if bpp := binary.LittleEndian.Uint16(data[bmpBitCountOff:]); bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("BMP with %d bpp: %w", bpp, ErrBitDepth)
	}

	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode BMP: %w", err)
	}
	return toRGBA(img), nil
}

// toRGBA returns img as *image.RGBA with its origin at (0,0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
