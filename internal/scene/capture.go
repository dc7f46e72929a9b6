package scene

import (
	"image"
	"math"
)

// Freehand tracks the last pointer position of a continuous stroke. Each new
// position after the first yields one segment.
type Freehand struct {
	last image.Point
	down bool
}

// MoveTo records p and returns the segment from the previous position, if
// the stroke already had one.
func (f *Freehand) MoveTo(p image.Point) (a, b image.Point, ok bool) {
	if !f.down {
		f.last, f.down = p, true
		return image.Point{}, image.Point{}, false
	}
	a, b = f.last, p
	f.last = p
	return a, b, true
}

// Release ends the stroke so the next MoveTo starts a fresh chain.
func (f *Freehand) Release() { f.down = false }

func (f *Freehand) Active() bool { return f.down }

// Eraser radius bounds and defaults.
const (
	DefaultEraserRadius = 16
	MinEraserRadius     = 1
	MaxEraserRadius     = 100
	EraserStep          = 2
)

// Eraser tracks the brush radius and the last dab position of a drag.
type Eraser struct {
	radius int
	last   image.Point
	active bool
}

func NewEraser(radius int) *Eraser {
	e := &Eraser{}
	e.SetRadius(radius)
	return e
}

// SetRadius sets the brush radius. Values below 1 become 1.
func (e *Eraser) SetRadius(r int) {
	if r < MinEraserRadius {
		r = MinEraserRadius
	}
	e.radius = r
}

func (e *Eraser) Radius() int { return e.radius }

// Adjust grows or shrinks the radius by delta pixels, clamped to
// MinEraserRadius..MaxEraserRadius.
func (e *Eraser) Adjust(delta int) {
	e.SetRadius(min(max(e.radius+delta, MinEraserRadius), MaxEraserRadius))
}

// Begin activates the eraser. A positive r replaces the current radius;
// otherwise the previous radius is kept.
func (e *Eraser) Begin(r int) {
	if r > 0 {
		e.SetRadius(r)
	}
	e.active = true
}

func (e *Eraser) Active() bool { return e.active }

func (e *Eraser) End() { e.active = false }

// Last is the position of the most recent dab.
func (e *Eraser) Last() image.Point { return e.last }

func (e *Eraser) moveTo(p image.Point) { e.last = p }

// Interpolate walks from a towards b in max(|dx|,|dy|) equal steps and
// returns every rounded intermediate point and b itself. Identical points
// yield nothing.
func Interpolate(a, b image.Point) []image.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return nil
	}
	ix := float64(dx) / float64(steps)
	iy := float64(dy) / float64(steps)
	x, y := float64(a.X), float64(a.Y)
	out := make([]image.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		x += ix
		y += iy
		out = append(out, image.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	return out
}
