package scene

import (
	"image"
	"image/color"

	"github.com/example/sketchboard/internal/raster"
)

// Pending collects the anchors of an anchored shape that is still being
// placed.
type Pending struct {
	kind Kind
	pts  []image.Point
}

// NewPending returns an empty buffer for kind. Kinds without anchors never
// become ready.
func NewPending(kind Kind) *Pending {
	return &Pending{kind: kind, pts: make([]image.Point, 0, 3)}
}

func (p *Pending) Kind() Kind { return p.kind }

func (p *Pending) Len() int { return len(p.pts) }

// Points returns a copy of the anchors collected so far.
func (p *Pending) Points() []image.Point {
	return append([]image.Point(nil), p.pts...)
}

// Ready reports whether every anchor has been placed.
func (p *Pending) Ready() bool {
	n := p.kind.Anchors()
	return n > 0 && len(p.pts) >= n
}

// AddPoint records an anchor. It is ignored once the buffer is ready.
func (p *Pending) AddPoint(pt image.Point) {
	if p.kind.Anchors() == 0 || p.Ready() {
		return
	}
	p.pts = append(p.pts, pt)
}

func (p *Pending) Reset() { p.pts = p.pts[:0] }

// Commit builds the shape described by the anchors, stamping it with the
// next value from seq, and empties the buffer. It returns false without
// consuming a z value when the buffer is not ready.
func (p *Pending) Commit(st Style, seq Sequencer) (Shape, bool) {
	if !p.Ready() {
		return nil, false
	}
	defer p.Reset()
	pts := p.pts
	z := seq.Next()
	switch p.kind {
	case KindLine:
		return NewSegment(pts[0], pts[1], st.Pattern, z), true
	case KindTriangle:
		return NewTriangle(pts[0], pts[1], pts[2], st, z), true
	case KindRect:
		return NewRect(pts[0], pts[1], st, z), true
	case KindCircle:
		return NewCircle(pts[0], pts[1], st, z), true
	case KindOval:
		return NewOval(pts[0], pts[1], st, z), true
	}
	return nil, false
}

// Preview draws the shape that would result if the next anchor were placed
// at cursor, in col with copy mode and the given outline pattern. The
// surface style is restored afterwards.
func (p *Pending) Preview(surf Surface, cursor image.Point, col color.RGBA, pat raster.Pattern) {
	if len(p.pts) == 0 || p.Ready() {
		return
	}
	saved := surf.Style()
	surf.SetStyle(raster.Style{Fill: saved.Fill, Stroke: col, Mode: raster.ModeCopy})
	defer surf.SetStyle(saved)

	a := p.pts[0]
	switch p.kind {
	case KindLine:
		surf.StrokeSegment(a, cursor, pat)
	case KindTriangle:
		if len(p.pts) == 1 {
			surf.StrokeSegment(a, cursor, pat)
			return
		}
		strokePolygon(surf, []image.Point{a, p.pts[1], cursor}, pat)
	case KindRect:
		strokePolygon(surf, NewRect(a, cursor, Style{}, NoZ).corners(), pat)
	case KindCircle:
		r := roundDistance(a, cursor)
		strokeOutline(surf, a, r, r, pat)
	case KindOval:
		o := NewOval(a, cursor, Style{}, NoZ)
		strokeOutline(surf, a, o.RX, o.RY, pat)
	}
}
