package raster

import (
	"image"
	"image/color"
	"testing"
)

func newCanvas(w, h int) *Canvas {
	c := New(image.NewRGBA(image.Rect(0, 0, w, h)))
	c.Clear(White)
	return c
}

func TestStrokeSegmentSolidCoversEndpoints(t *testing.T) {
	c := newCanvas(20, 20)
	c.StrokeSegment(image.Pt(2, 3), image.Pt(15, 3), PatternSolid)
	for x := 2; x <= 15; x++ {
		if got := c.Image().RGBAAt(x, 3); got != Black {
			t.Fatalf("pixel (%d,3) = %v, want black", x, got)
		}
	}
	if got := c.Image().RGBAAt(1, 3); got != White {
		t.Fatalf("pixel before start painted: %v", got)
	}
}

func TestStrokeSegmentDashedLeavesGaps(t *testing.T) {
	c := newCanvas(40, 4)
	c.StrokeSegment(image.Pt(0, 1), image.Pt(39, 1), PatternDashed)
	painted := 0
	for x := 0; x < 40; x++ {
		on := c.Image().RGBAAt(x, 1) == Black
		want := x%(dashOn+dashOff) < dashOn
		if on != want {
			t.Fatalf("pixel %d painted=%v, want %v", x, on, want)
		}
		if on {
			painted++
		}
	}
	if painted != 24 {
		t.Fatalf("painted %d pixels, want 24", painted)
	}
}

func TestStrokeSegmentClipsOutsideImage(t *testing.T) {
	c := newCanvas(5, 5)
	c.StrokeSegment(image.Pt(-10, 2), image.Pt(10, 2), PatternSolid)
	if got := c.Image().RGBAAt(4, 2); got != Black {
		t.Fatalf("expected clipped line to paint edge pixel, got %v", got)
	}
}

func TestStyleRestore(t *testing.T) {
	c := newCanvas(4, 4)
	saved := c.Style()
	c.SetStyle(Style{Fill: color.RGBA{1, 2, 3, 255}, Stroke: color.RGBA{4, 5, 6, 255}, Mode: ModeXOR})
	c.SetStyle(saved)
	if c.Style() != saved {
		t.Fatalf("style = %+v, want %+v", c.Style(), saved)
	}
}

func TestXORModeInvertsTwice(t *testing.T) {
	c := newCanvas(10, 10)
	c.SetStyle(Style{Stroke: color.RGBA{255, 255, 255, 255}, Mode: ModeXOR})
	c.StrokeSegment(image.Pt(0, 5), image.Pt(9, 5), PatternSolid)
	if got := c.Image().RGBAAt(4, 5); got != Black {
		t.Fatalf("xor over white = %v, want black", got)
	}
	c.StrokeSegment(image.Pt(0, 5), image.Pt(9, 5), PatternSolid)
	if got := c.Image().RGBAAt(4, 5); got != White {
		t.Fatalf("second xor = %v, want white", got)
	}
}

func TestFillRectInclusive(t *testing.T) {
	c := newCanvas(10, 10)
	red := color.RGBA{255, 0, 0, 255}
	c.FillRect(5, 5, 2, 3, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			in := x >= 2 && x <= 5 && y >= 3 && y <= 5
			if (c.Image().RGBAAt(x, y) == red) != in {
				t.Fatalf("pixel (%d,%d) inside=%v mismatch", x, y, in)
			}
		}
	}
}

func TestFillDisk(t *testing.T) {
	c := newCanvas(21, 21)
	blue := color.RGBA{0, 0, 255, 255}
	c.FillDisk(image.Pt(10, 10), 5, blue)
	if c.Image().RGBAAt(10, 10) != blue || c.Image().RGBAAt(15, 10) != blue {
		t.Fatal("expected centre and rim pixels filled")
	}
	if c.Image().RGBAAt(14, 14) == blue {
		t.Fatal("corner outside radius was filled")
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	c := newCanvas(30, 30)
	green := color.RGBA{0, 200, 0, 255}
	c.FillPolygon([]image.Point{{2, 2}, {26, 2}, {2, 26}}, green)
	if got := c.Image().RGBAAt(6, 6); got != green {
		t.Fatalf("interior pixel = %v, want fill", got)
	}
	if got := c.Image().RGBAAt(25, 25); got != White {
		t.Fatalf("pixel beyond hypotenuse = %v, want white", got)
	}
}

func TestStrokeEllipseCircleRim(t *testing.T) {
	c := newCanvas(30, 30)
	c.StrokeEllipse(image.Pt(15, 15), 10, 10)
	for _, p := range []image.Point{{25, 15}, {5, 15}, {15, 25}, {15, 5}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != Black {
			t.Fatalf("rim pixel %v = %v", p, got)
		}
	}
	if got := c.Image().RGBAAt(15, 15); got != White {
		t.Fatalf("centre painted by outline")
	}
}

func TestStrokeEllipseDegenerate(t *testing.T) {
	c := newCanvas(10, 10)
	c.StrokeEllipse(image.Pt(5, 5), 0, 4)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.Image().RGBAAt(x, y) != White {
				t.Fatalf("degenerate ellipse painted (%d,%d)", x, y)
			}
		}
	}
}

func TestBlitCopiesAtOrigin(t *testing.T) {
	c := newCanvas(8, 8)
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	red := color.RGBA{255, 0, 0, 255}
	src.SetRGBA(10, 10, red)
	c.Blit(src)
	if got := c.Image().RGBAAt(0, 0); got != red {
		t.Fatalf("blit origin = %v, want red", got)
	}
}
