// Package debug provides viewer debugging aids.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshotter writes framebuffer captures as PNG files.
type Screenshotter struct {
	outputDir string
	prefix    string
	now       func() time.Time

	last  string // timestamp of the previous capture
	count int    // captures within the same second
}

// NewScreenshotter creates a screenshot writer. An empty outputDir writes
// into the working directory.
func NewScreenshotter(outputDir, prefix string) *Screenshotter {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Screenshotter{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Save writes pixels as a PNG and returns the file name.
// pixels is bottom-up RGBA as returned by glReadPixels.
func (s *Screenshotter) Save(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename returns prefix_timestamp.png, adding a counter when several
// captures land in the same second.
func (s *Screenshotter) nextFilename() string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	if stamp == s.last {
		s.count++
	} else {
		s.last = stamp
		s.count = 0
	}

	name := fmt.Sprintf("%s_%s.png", s.prefix, stamp)
	if s.count > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", s.prefix, stamp, s.count)
	}
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}

// FlipRGBA converts bottom-up RGBA rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
