package scene

import (
	"image"
	"image/color"
	"sort"
)

// layer is the part of a Store the compositor needs.
type layer interface {
	Len() int
	ZAt(i int) int
	DrawAt(surf Surface, i int)
}

// Target is a Surface the compositor can wipe and blit onto.
type Target interface {
	Surface
	Clear(col color.RGBA)
	Blit(src image.Image)
}

// Ref locates one committed shape.
type Ref struct {
	Z     int
	Kind  Kind
	Index int
}

func (s *Scene) layer(kind Kind) layer {
	switch kind {
	case KindFreehand:
		return s.freehand
	case KindLine:
		return s.lines
	case KindTriangle:
		return s.triangles
	case KindRect:
		return s.rects
	case KindCircle:
		return s.circles
	case KindOval:
		return s.ovals
	case KindEraser:
		return s.dabs
	}
	return nil
}

// Order lists every committed shape in draw order.
func (s *Scene) Order() []Ref {
	refs := make([]Ref, 0, s.Total())
	for _, k := range Kinds {
		l := s.layer(k)
		for i := 0; i < l.Len(); i++ {
			refs = append(refs, Ref{Z: l.ZAt(i), Kind: k, Index: i})
		}
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Z < refs[j].Z })
	return refs
}

// Rebuild recomposes the raster target: white, then the background, then
// every shape in ascending z. The scene is clean afterwards.
func (s *Scene) Rebuild() {
	s.ensureCanvas()
	s.Replay(s.canvas)
	s.dirty = false
}

// Replay composes the scene onto t without touching the scene's own raster
// target or dirty flag. Exporters use it to render vector output.
func (s *Scene) Replay(t Target) {
	t.Clear(EraseColor)
	if s.background != nil {
		t.Blit(s.background)
	}
	for _, r := range s.Order() {
		s.layer(r.Kind).DrawAt(t, r.Index)
	}
}
