package scene

import (
	"image"

	"github.com/example/sketchboard/internal/raster"
)

// Store holds the committed shapes of one category in insertion order.
// Capacity grows by doubling from the seed; when limit is positive it is the
// largest capacity the store may reach, and appends past it are dropped the
// same way a failed allocation would drop them.
type Store[S Shape] struct {
	items []S
	seed  int
	limit int
}

// NewStore returns an empty store. A limit of 0 means unbounded.
func NewStore[S Shape](seed, limit int) *Store[S] {
	if seed < 1 {
		seed = 1
	}
	return &Store[S]{seed: seed, limit: limit}
}

func (s *Store[S]) Len() int { return len(s.items) }

func (s *Store[S]) Cap() int { return cap(s.items) }

// At returns the i'th shape in insertion order.
func (s *Store[S]) At(i int) (S, bool) {
	if i < 0 || i >= len(s.items) {
		var zero S
		return zero, false
	}
	return s.items[i], true
}

// Items returns the backing slice. Callers must not modify it.
func (s *Store[S]) Items() []S { return s.items }

// ZAt returns the z value of the i'th shape, or NoZ when i is out of range.
func (s *Store[S]) ZAt(i int) int {
	if i < 0 || i >= len(s.items) {
		return NoZ
	}
	return s.items[i].Z()
}

// DrawAt replays the i'th shape with the outline colour forced to black and
// copy mode, restoring the surface style afterwards. Out of range indices
// draw nothing.
func (s *Store[S]) DrawAt(surf Surface, i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	saved := surf.Style()
	surf.SetStyle(raster.Style{Fill: saved.Fill, Stroke: OutlineColor, Mode: raster.ModeCopy})
	s.items[i].Draw(surf)
	surf.SetStyle(saved)
}

// Append adds sh and reports whether it was stored.
func (s *Store[S]) Append(sh S) bool {
	if len(s.items) == cap(s.items) && !s.grow() {
		return false
	}
	s.items = append(s.items, sh)
	return true
}

func (s *Store[S]) grow() bool {
	need := len(s.items) + 1
	if s.limit > 0 && need > s.limit {
		return false
	}
	newCap := cap(s.items) * 2
	if newCap == 0 {
		newCap = s.seed
	}
	if s.limit > 0 && newCap > s.limit {
		newCap = s.limit
	}
	next := make([]S, len(s.items), newCap)
	copy(next, s.items)
	s.items = next
	return true
}

// DeleteNear removes the first shape, in insertion order, whose outline is
// within threshold of p. Later shapes shift down by one.
func (s *Store[S]) DeleteNear(p image.Point, threshold int) bool {
	for i, sh := range s.items {
		if !sh.Near(p, threshold) {
			continue
		}
		copy(s.items[i:], s.items[i+1:])
		var zero S
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
		return true
	}
	return false
}

// ResetAll drops every shape and releases the backing array.
func (s *Store[S]) ResetAll() { s.items = nil }
