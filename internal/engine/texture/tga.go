// Package texture decodes BMP and TGA images and uploads them as GL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type codes.
const (
	TGATypeTrueColor = 2  // uncompressed true-color
	TGATypeGray      = 3  // uncompressed black and white
	TGATypeRLE       = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var (
	// ErrTGAType is returned for TGA image types other than 2, 3 and 10.
	ErrTGAType = errors.New("unsupported TGA image type")
	// ErrTruncated is returned when image data ends early.
	ErrTruncated = errors.New("image data truncated")
)

// DecodeTGA decodes a TGA image.
//
// Types 2 and 3 are read as uncompressed 24 or 32 bit BGR(A) pixels; type 3
// also accepts 8 bit grayscale. Type 10 is RLE compressed true-color. Rows
// are stored bottom-up unless bit 5 of the descriptor is set.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA header: %w", ErrTruncated)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA: %w", ErrTGAType)
	}
	switch imageType {
	case TGATypeTrueColor, TGATypeRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("TGA type %d with %d bpp: %w", imageType, bpp, ErrBitDepth)
		}
	case TGATypeGray:
		if bpp != 8 && bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("TGA type %d with %d bpp: %w", imageType, bpp, ErrBitDepth)
		}
	default:
		return nil, fmt.Errorf("TGA type %d: %w", imageType, ErrTGAType)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA id field: %w", ErrTruncated)
	}
	pixels := data[offset:]

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		bytes:       bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeRLE {
		if err := d.decodeRLE(pixels); err != nil {
			return nil, err
		}
		return d.img, nil
	}

	if len(pixels) < width*height*d.bytes {
		return nil, fmt.Errorf("TGA pixels: %w", ErrTruncated)
	}
	for i := 0; i < width*height; i++ {
		d.set(i, d.pixel(pixels[i*d.bytes:]))
	}
	return d.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	width, height int
	bytes         int
	topToBottom   bool
}

// pixel converts one stored pixel to RGBA.
func (d *tgaDecoder) pixel(p []byte) color.RGBA {
	if d.bytes == 1 {
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 255}
	}
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytes == 4 {
		c.A = p[3]
	}
	return c
}

// set stores the n-th pixel in file order.
func (d *tgaDecoder) set(n int, c color.RGBA) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRLE(data []byte) error {
	total := d.width * d.height
	n := 0
	i := 0

	for n < total {
		if i >= len(data) {
			return fmt.Errorf("TGA RLE packet %d: %w", n, ErrTruncated)
		}
		packet := data[i]
		i++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+d.bytes > len(data) {
				return fmt.Errorf("TGA RLE run: %w", ErrTruncated)
			}
			c := d.pixel(data[i:])
			i += d.bytes
			for k := 0; k < count && n < total; k++ {
				d.set(n, c)
				n++
			}
			continue
		}

		for k := 0; k < count && n < total; k++ {
			if i+d.bytes > len(data) {
				return fmt.Errorf("TGA RLE raw: %w", ErrTruncated)
			}
			d.set(n, d.pixel(data[i:]))
			i += d.bytes
			n++
		}
	}
	return nil
}
