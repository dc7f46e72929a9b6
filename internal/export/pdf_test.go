package export

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"

	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

func sampleScene() *scene.Scene {
	s := scene.New(scene.WithSize(200, 100))
	s.AddPoint(scene.KindLine, image.Pt(10, 10))
	s.AddPoint(scene.KindLine, image.Pt(190, 90))
	s.SetPattern(raster.PatternDashed)
	s.AddPoint(scene.KindOval, image.Pt(100, 50))
	s.AddPoint(scene.KindOval, image.Pt(140, 70))
	for _, p := range []image.Point{{5, 5}, {60, 5}, {5, 60}} {
		s.AddPoint(scene.KindTriangle, p)
	}
	s.BeginErase(4)
	s.AddDab(image.Pt(50, 50))
	return s
}

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, sampleScene()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}

func TestPDFWithBackground(t *testing.T) {
	s := sampleScene()
	s.ReplaceBackground(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	path := filepath.Join(t.TempDir(), "scene.pdf")
	if err := SavePDF(path, s); err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
}

func TestPDFSurfaceStyleRoundTrip(t *testing.T) {
	surf := newPDFSurface(image.Pt(10, 10))
	saved := surf.Style()
	surf.SetStyle(raster.Style{Stroke: raster.White, Fill: raster.Black})
	surf.SetStyle(saved)
	if surf.Style() != saved {
		t.Fatalf("style = %+v, want %+v", surf.Style(), saved)
	}
}
