package scene

import (
	"image"
	"math"
)

// SegmentDistance returns the distance from p to the closest point of the
// segment ab. A zero-length segment degrades to the distance to a.
func SegmentDistance(p, a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	px := float64(p.X - a.X)
	py := float64(p.Y - a.Y)
	if dx == 0 && dy == 0 {
		return math.Hypot(px, py)
	}
	t := (px*dx + py*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-t*dx, py-t*dy)
}

// NearSegment reports whether p lies within threshold of segment ab.
func NearSegment(p, a, b image.Point, threshold int) bool {
	return SegmentDistance(p, a, b) <= float64(threshold)
}

// NearPolyline reports whether p is within threshold of any edge of the
// closed polygon through pts.
func NearPolyline(p image.Point, pts []image.Point, threshold int) bool {
	for i := range pts {
		if NearSegment(p, pts[i], pts[(i+1)%len(pts)], threshold) {
			return true
		}
	}
	return false
}

// RingDistance is the distance from p to the rim of a circle, measured as
// the rounded centre distance minus the radius.
func RingDistance(p, center image.Point, radius int) int {
	d := int(math.Round(math.Hypot(float64(p.X-center.X), float64(p.Y-center.Y))))
	return abs(d - radius)
}

// NearRing reports whether p is within threshold of the circle's rim.
func NearRing(p, center image.Point, radius, threshold int) bool {
	return RingDistance(p, center, radius) <= threshold
}

// EllipseEdgeDistance approximates the distance from p to the ellipse
// boundary. The boundary point is taken at the parametric angle of p in the
// space scaled by the radii, which is close to but not exactly the nearest
// boundary point. Degenerate radii report math.MaxInt.
func EllipseEdgeDistance(p, center image.Point, rx, ry int) int {
	if rx <= 0 || ry <= 0 {
		return math.MaxInt
	}
	dx := float64(p.X - center.X)
	dy := float64(p.Y - center.Y)
	t := math.Atan2(dy/float64(ry), dx/float64(rx))
	bx := float64(center.X) + float64(rx)*math.Cos(t)
	by := float64(center.Y) + float64(ry)*math.Sin(t)
	return int(math.Round(math.Hypot(float64(p.X)-bx, float64(p.Y)-by)))
}

// NearEllipse reports whether p is within threshold of the ellipse boundary.
func NearEllipse(p, center image.Point, rx, ry, threshold int) bool {
	return EllipseEdgeDistance(p, center, rx, ry) <= threshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
