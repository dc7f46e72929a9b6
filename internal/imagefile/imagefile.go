// Package imagefile loads background images and writes composed canvases.
package imagefile

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Format names accepted by Save.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatPDF  = "pdf"
)

const jpegQuality = 92

// FormatFor maps a file extension to a format name.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
}

// Load decodes the PNG, JPEG or BMP file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("error closing %q: %v", path, err)
		}
	}()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered raster format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Encode writes img in the given raster format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("cannot encode %s as a raster image", format)
}

// Save writes img to path in the raster format implied by its extension.
func Save(path string, img image.Image) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if format == FormatPDF {
		return fmt.Errorf("save %s: pdf output needs a scene export", path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Fit converts img to RGBA at the given size. Images that already match are
// copied; others are scaled with Catmull-Rom so a background always covers
// the canvas.
func Fit(img image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if img.Bounds().Size() == size {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
