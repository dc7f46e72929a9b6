package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/example/sketchboard/internal/raster"
)

// Surface is the drawing target shapes replay onto. raster.Canvas is the
// production implementation.
type Surface interface {
	StrokeSegment(a, b image.Point, p raster.Pattern)
	StrokeEllipse(center image.Point, rx, ry int)
	FillPolygon(pts []image.Point, col color.RGBA)
	FillRect(l, t, r, b int, col color.RGBA)
	FillDisk(center image.Point, r int, col color.RGBA)
	Style() raster.Style
	SetStyle(raster.Style)
}

var (
	// OutlineColor is forced for every committed outline so a saved scene
	// does not depend on palette state.
	OutlineColor = raster.Black
	// EraseColor is the canvas background and the colour of eraser dabs.
	EraseColor = raster.White
	// PreviewColor is the default stroke for in-progress shapes.
	PreviewColor = color.RGBA{211, 211, 211, 255}
	// DefaultFillColor matches the first palette swatch.
	DefaultFillColor = color.RGBA{200, 220, 255, 255}
)

// Kind identifies one of the seven shape categories.
type Kind int

const (
	KindFreehand Kind = iota
	KindLine
	KindTriangle
	KindRect
	KindCircle
	KindOval
	KindEraser

	numKinds
)

// Kinds lists every category in store order.
var Kinds = []Kind{KindFreehand, KindLine, KindTriangle, KindRect, KindCircle, KindOval, KindEraser}

var kindNames = [numKinds]string{"freehand", "line", "triangle", "rect", "circle", "oval", "eraser"}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a category name such as "rect" or "oval".
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	switch s {
	case "square", "rectangle":
		return KindRect, true
	case "ellipse":
		return KindOval, true
	case "pen", "draw":
		return KindFreehand, true
	}
	return 0, false
}

// Anchors is the number of clicked points a shape of this kind needs.
// Freehand and eraser are continuous and report 0.
func (k Kind) Anchors() int {
	switch k {
	case KindLine, KindRect, KindCircle, KindOval:
		return 2
	case KindTriangle:
		return 3
	}
	return 0
}

// Style is the per-shape appearance captured at commit time.
type Style struct {
	Pattern   raster.Pattern
	Fill      bool
	FillColor color.RGBA
}

// Shape is a committed, immutable scene element.
type Shape interface {
	Z() int
	// Draw replays the shape. The caller owns the style bracket.
	Draw(s Surface)
	// Near reports whether p is within threshold of the shape's outline.
	Near(p image.Point, threshold int) bool
}

// Segment is a straight line. Lines and freehand pieces share it.
type Segment struct {
	A, B    image.Point
	Pattern raster.Pattern
	Seq     int
}

func NewSegment(a, b image.Point, p raster.Pattern, z int) Segment {
	return Segment{A: a, B: b, Pattern: p, Seq: z}
}

func (s Segment) Z() int { return s.Seq }

func (s Segment) Draw(surf Surface) { surf.StrokeSegment(s.A, s.B, s.Pattern) }

func (s Segment) Near(p image.Point, threshold int) bool {
	return NearSegment(p, s.A, s.B, threshold)
}

type Triangle struct {
	A, B, C image.Point
	Style   Style
	Seq     int
}

func NewTriangle(a, b, c image.Point, st Style, z int) Triangle {
	return Triangle{A: a, B: b, C: c, Style: st, Seq: z}
}

func (t Triangle) Z() int { return t.Seq }

func (t Triangle) points() []image.Point { return []image.Point{t.A, t.B, t.C} }

func (t Triangle) Draw(surf Surface) {
	if t.Style.Fill {
		setFill(surf, t.Style.FillColor)
		surf.FillPolygon(t.points(), t.Style.FillColor)
	}
	strokePolygon(surf, t.points(), t.Style.Pattern)
}

func (t Triangle) Near(p image.Point, threshold int) bool {
	return NearPolyline(p, t.points(), threshold)
}

// Rect is stored with normalised corners: Min is top-left, Max bottom-right,
// both inclusive.
type Rect struct {
	Min, Max image.Point
	Style    Style
	Seq      int
}

// NewRect normalises two opposite corners given in any order.
func NewRect(a, b image.Point, st Style, z int) Rect {
	return Rect{
		Min:   image.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		Max:   image.Pt(max(a.X, b.X), max(a.Y, b.Y)),
		Style: st,
		Seq:   z,
	}
}

func (r Rect) Z() int { return r.Seq }

func (r Rect) corners() []image.Point {
	return []image.Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
}

func (r Rect) Draw(surf Surface) {
	if r.Style.Fill {
		setFill(surf, r.Style.FillColor)
		surf.FillRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Style.FillColor)
	}
	strokePolygon(surf, r.corners(), r.Style.Pattern)
}

func (r Rect) Near(p image.Point, threshold int) bool {
	return NearPolyline(p, r.corners(), threshold)
}

type Circle struct {
	Center image.Point
	Radius int
	Style  Style
	Seq    int
}

// NewCircle builds a circle from its centre and a point on the rim. The
// radius is the rounded distance between the two.
func NewCircle(center, rim image.Point, st Style, z int) Circle {
	return Circle{Center: center, Radius: roundDistance(center, rim), Style: st, Seq: z}
}

func (c Circle) Z() int { return c.Seq }

func (c Circle) Draw(surf Surface) {
	if c.Radius <= 0 {
		return
	}
	if c.Style.Fill {
		setFill(surf, c.Style.FillColor)
		surf.FillDisk(c.Center, c.Radius, c.Style.FillColor)
	}
	strokeOutline(surf, c.Center, c.Radius, c.Radius, c.Style.Pattern)
}

func (c Circle) Near(p image.Point, threshold int) bool {
	return NearRing(p, c.Center, c.Radius, threshold)
}

type Oval struct {
	Center image.Point
	RX, RY int
	Style  Style
	Seq    int
}

// NewOval builds an axis aligned ellipse whose radii are the horizontal and
// vertical offsets of q from center.
func NewOval(center, q image.Point, st Style, z int) Oval {
	return Oval{Center: center, RX: abs(q.X - center.X), RY: abs(q.Y - center.Y), Style: st, Seq: z}
}

func (o Oval) Z() int { return o.Seq }

func (o Oval) Draw(surf Surface) {
	if o.RX <= 0 || o.RY <= 0 {
		return
	}
	if o.Style.Fill {
		setFill(surf, o.Style.FillColor)
		FillEllipse(surf, o.Center, o.RX, o.RY, o.Style.FillColor)
	}
	strokeOutline(surf, o.Center, o.RX, o.RY, o.Style.Pattern)
}

func (o Oval) Near(p image.Point, threshold int) bool {
	return NearEllipse(p, o.Center, o.RX, o.RY, threshold)
}

// Dab is one eraser paint event: a disk in the erase colour.
type Dab struct {
	Center image.Point
	Radius int
	Seq    int
}

func (d Dab) Z() int { return d.Seq }

func (d Dab) Draw(surf Surface) {
	setFill(surf, EraseColor)
	surf.FillDisk(d.Center, d.Radius, EraseColor)
}

// Near is always false: dabs cannot be picked for deletion.
func (d Dab) Near(image.Point, int) bool { return false }

// FillEllipse paints the interior of an axis aligned ellipse one scanline at
// a time. Each row spans rx*sqrt(1-(dy/ry)^2) either side of the centre.
func FillEllipse(surf Surface, center image.Point, rx, ry int, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := center.Y - ry; y <= center.Y+ry; y++ {
		ny := float64(y-center.Y) / float64(ry)
		inside := 1 - ny*ny
		if inside < 0 {
			continue
		}
		half := int(math.Floor(float64(rx)*math.Sqrt(inside) + 0.5))
		surf.FillRect(center.X-half, y, center.X+half, y, col)
	}
}

func strokePolygon(surf Surface, pts []image.Point, p raster.Pattern) {
	for i := range pts {
		surf.StrokeSegment(pts[i], pts[(i+1)%len(pts)], p)
	}
}

func setFill(surf Surface, col color.RGBA) {
	st := surf.Style()
	st.Fill = col
	surf.SetStyle(st)
}

func roundDistance(a, b image.Point) int {
	return int(math.Round(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))))
}
