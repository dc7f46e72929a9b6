package scene

import (
	"image"
	"math"
	"testing"
)

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name string
		p    image.Point
		a, b image.Point
		want float64
	}{
		{"perpendicular", image.Pt(5, 3), image.Pt(0, 0), image.Pt(10, 0), 3},
		{"clamped before start", image.Pt(-3, 4), image.Pt(0, 0), image.Pt(10, 0), 5},
		{"clamped past end", image.Pt(13, 4), image.Pt(0, 0), image.Pt(10, 0), 5},
		{"zero length", image.Pt(3, 4), image.Pt(0, 0), image.Pt(0, 0), 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentDistance(tc.p, tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("SegmentDistance = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNearRingIgnoresInterior(t *testing.T) {
	c := image.Pt(50, 50)
	if NearRing(c, c, 30, 10) {
		t.Error("centre of a large circle matched")
	}
	if !NearRing(image.Pt(85, 50), c, 30, 10) {
		t.Error("point 5 px outside the rim did not match")
	}
}

func TestEllipseEdgeDistance(t *testing.T) {
	c := image.Pt(0, 0)
	if d := EllipseEdgeDistance(image.Pt(40, 0), c, 40, 20); d != 0 {
		t.Errorf("on-axis boundary distance = %d", d)
	}
	if d := EllipseEdgeDistance(image.Pt(0, 26), c, 40, 20); d != 6 {
		t.Errorf("distance above top = %d, want 6", d)
	}
	if d := EllipseEdgeDistance(image.Pt(1, 1), c, 0, 20); d != math.MaxInt {
		t.Errorf("degenerate ellipse distance = %d", d)
	}
}

func TestShapeNear(t *testing.T) {
	tri := NewTriangle(image.Pt(0, 0), image.Pt(100, 0), image.Pt(0, 100), Style{}, 1)
	if !tri.Near(image.Pt(50, 52), 10) {
		t.Error("point by hypotenuse not near triangle")
	}
	if tri.Near(image.Pt(25, 25), 10) {
		t.Error("triangle interior matched")
	}
	if (Dab{Center: image.Pt(1, 1), Radius: 50}).Near(image.Pt(1, 1), 100) {
		t.Error("dab matched")
	}
}
