// Package debug saves captures of rendered frames.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshots writes frames as PNG files named <prefix>_<timestamp>.png.
type Screenshots struct {
	dir    string
	prefix string

	// Now stamps file names. Tests replace it.
	Now func() time.Time
}

// NewScreenshots writes into dir; an empty dir means the working directory.
// The prefix is lowered and spaces become underscores.
func NewScreenshots(dir, prefix string) *Screenshots {
	prefix = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(prefix), " ", "_"))
	if prefix == "" {
		prefix = "frame"
	}
	return &Screenshots{dir: dir, prefix: prefix, Now: time.Now}
}

// Filename returns the path the next capture would be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.Now().Format("2006-01-02_15-04-05.000"))
	if s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

// FromPixels turns bottom-up RGBA rows, as read back from OpenGL, into a
// top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data for %dx%d: got %d bytes", width, height, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// Save writes bottom-up RGBA pixels to a new PNG file and returns its path.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.Filename()
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
