package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/logger"
)

// Load reads and decodes a BMP or TGA file, chosen by extension.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}

	var img *image.RGBA
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		img, err = DecodeBMP(data)
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		return nil, fmt.Errorf("%s: unknown image extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("texture decoded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return img, nil
}

// FlipVertical returns a copy of img with its rows reversed. GL expects the
// first row of texture data to be the bottom of the image.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := out.Pix[(b.Dy()-1-y)*out.Stride:]
		copy(dst[:rowLen], src)
	}
	return out
}

// Texture is an image uploaded to the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Upload creates a mipmapped, linearly filtered GL texture from img, so
// that texture coordinate (0,0) is the bottom-left of the image.
func Upload(img *image.RGBA) *Texture {
	flipped := FlipVertical(img)
	w, h := flipped.Bounds().Dx(), flipped.Bounds().Dy()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&flipped.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: w, Height: h}
}

// LoadAndUpload loads an image file and uploads it.
func LoadAndUpload(path string) (*Texture, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: empty image", path)
	}
	return Upload(img), nil
}

// Delete releases the GL texture.
func (t *Texture) Delete() {
	if t != nil && t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
