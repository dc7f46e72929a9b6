package imagefile

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestFormatFor(t *testing.T) {
	tests := map[string]string{
		"a.png":  FormatPNG,
		"b.JPG":  FormatJPEG,
		"c.jpeg": FormatJPEG,
		"d.bmp":  FormatBMP,
		"e.pdf":  FormatPDF,
		"noext":  FormatPNG,
	}
	for in, want := range tests {
		got, err := FormatFor(in)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := FormatFor("x.gif"); err == nil {
		t.Error("expected error for .gif")
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	img.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})
	return img
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "sub/out.bmp"} {
		path := filepath.Join(dir, name)
		if err := Save(path, testImage()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		r, g, b, _ := img.At(2, 1).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Errorf("%s: pixel = %d %d %d", name, r>>8, g>>8, b>>8)
		}
	}
}

func TestSaveRejectsPDF(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "x.pdf"), testImage()); err == nil {
		t.Fatal("expected error saving raster as pdf")
	}
}

func TestEncodeJPEGDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), FormatJPEG); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 6 {
		t.Fatalf("bounds %v", img.Bounds())
	}
}

func TestFit(t *testing.T) {
	src := testImage()
	same := Fit(src, image.Pt(6, 4))
	if same.RGBAAt(2, 1) != src.RGBAAt(2, 1) {
		t.Fatal("same-size fit altered pixels")
	}
	scaled := Fit(src, image.Pt(12, 8))
	if scaled.Bounds().Size() != image.Pt(12, 8) {
		t.Fatalf("scaled bounds %v", scaled.Bounds())
	}
}
