package scene

import (
	"image"
	"image/color"

	"github.com/example/sketchboard/internal/raster"
)

// Defaults for a new Scene.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultThreshold = 10

	shapeSeed = 16
	dabSeed   = 4096
)

// Scene owns every committed shape, the pending input of each anchored
// kind, the drawing settings and the composed raster. It is not safe for
// concurrent use; callers drive it from one goroutine.
type Scene struct {
	seq       Sequencer
	size      image.Point
	threshold int
	style     Style
	preview   color.RGBA
	logf      func(format string, args ...any)

	freehand  *Store[Segment]
	lines     *Store[Segment]
	triangles *Store[Triangle]
	rects     *Store[Rect]
	circles   *Store[Circle]
	ovals     *Store[Oval]
	dabs      *Store[Dab]

	pending [numKinds]*Pending
	pen     Freehand
	eraser  *Eraser

	background image.Image
	canvas     *raster.Canvas
	dirty      bool
}

// Option configures a Scene.
type Option func(*Scene)

// WithSequencer replaces the default counter starting at 1.
func WithSequencer(seq Sequencer) Option {
	return func(s *Scene) { s.seq = seq }
}

// WithSize sets the raster target size.
func WithSize(w, h int) Option {
	return func(s *Scene) {
		if w > 0 && h > 0 {
			s.size = image.Pt(w, h)
		}
	}
}

// WithLogger traces commits and deletions through logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Scene) { s.logf = logf }
}

// WithEraserRadius sets the starting eraser radius, clamped to
// MinEraserRadius..MaxEraserRadius.
func WithEraserRadius(r int) Option {
	return func(s *Scene) { s.eraser.SetRadius(min(r, MaxEraserRadius)) }
}

// WithStyle sets the initial pattern, fill flag and fill colour.
func WithStyle(st Style) Option {
	return func(s *Scene) { s.style = st }
}

func WithThreshold(t int) Option {
	return func(s *Scene) {
		if t >= 0 {
			s.threshold = t
		}
	}
}

func WithPreviewColor(c color.RGBA) Option {
	return func(s *Scene) { s.preview = c }
}

// New returns an empty, dirty scene.
func New(opts ...Option) *Scene {
	s := &Scene{
		seq:       NewCounter(0),
		size:      image.Pt(DefaultWidth, DefaultHeight),
		threshold: DefaultThreshold,
		style:     Style{Pattern: raster.PatternSolid, Fill: true, FillColor: DefaultFillColor},
		preview:   PreviewColor,
		freehand:  NewStore[Segment](shapeSeed, 0),
		lines:     NewStore[Segment](shapeSeed, 0),
		triangles: NewStore[Triangle](shapeSeed, 0),
		rects:     NewStore[Rect](shapeSeed, 0),
		circles:   NewStore[Circle](shapeSeed, 0),
		ovals:     NewStore[Oval](shapeSeed, 0),
		dabs:      NewStore[Dab](dabSeed, 0),
		eraser:    NewEraser(DefaultEraserRadius),
		dirty:     true,
	}
	for _, k := range Kinds {
		s.pending[k] = NewPending(k)
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Scene) tracef(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

func (s *Scene) Size() image.Point { return s.size }

func (s *Scene) Threshold() int { return s.threshold }

func (s *Scene) Style() Style { return s.style }

// SetPattern changes the pattern used by later commits.
func (s *Scene) SetPattern(p raster.Pattern) {
	s.style.Pattern = p
	s.MarkDirty()
}

func (s *Scene) SetFill(on bool) {
	s.style.Fill = on
	s.MarkDirty()
}

func (s *Scene) SetFillColor(c color.RGBA) {
	s.style.FillColor = c
	s.MarkDirty()
}

func (s *Scene) Eraser() *Eraser { return s.eraser }

// Pending returns the anchor buffer of kind.
func (s *Scene) Pending(kind Kind) *Pending {
	if kind < 0 || kind >= numKinds {
		return nil
	}
	return s.pending[kind]
}

// AddPoint places one anchor for an anchored kind. When the anchor completes
// the shape it is committed and its z is returned.
func (s *Scene) AddPoint(kind Kind, p image.Point) (int, bool) {
	pend := s.Pending(kind)
	if pend == nil || kind.Anchors() == 0 {
		return NoZ, false
	}
	pend.AddPoint(p)
	sh, ok := pend.Commit(s.style, s.seq)
	if !ok {
		return NoZ, false
	}
	if !s.store(kind, sh) {
		return NoZ, false
	}
	return sh.Z(), true
}

func (s *Scene) store(kind Kind, sh Shape) bool {
	var ok bool
	switch v := sh.(type) {
	case Segment:
		if kind == KindFreehand {
			ok = s.freehand.Append(v)
		} else {
			ok = s.lines.Append(v)
		}
	case Triangle:
		ok = s.triangles.Append(v)
	case Rect:
		ok = s.rects.Append(v)
	case Circle:
		ok = s.circles.Append(v)
	case Oval:
		ok = s.ovals.Append(v)
	case Dab:
		ok = s.dabs.Append(v)
	}
	if !ok {
		s.tracef("scene: dropped %s z=%d", kind, sh.Z())
		return false
	}
	s.tracef("scene: commit %s z=%d", kind, sh.Z())
	s.MarkDirty()
	return true
}

// CancelPending discards every partially placed shape.
func (s *Scene) CancelPending() {
	for _, p := range s.pending {
		p.Reset()
	}
	s.pen.Release()
	s.eraser.End()
}

// FreehandTo extends the current freehand stroke to p. The first point of a
// stroke only records the position; every later point commits one segment.
func (s *Scene) FreehandTo(p image.Point) (int, bool) {
	a, b, ok := s.pen.MoveTo(p)
	if !ok {
		return NoZ, false
	}
	seg := NewSegment(a, b, s.style.Pattern, s.seq.Next())
	if !s.store(KindFreehand, seg) {
		return NoZ, false
	}
	return seg.Seq, true
}

// FreehandRelease ends the stroke; the next point starts a new chain.
func (s *Scene) FreehandRelease() { s.pen.Release() }

// BeginErase starts an eraser stroke. r<=0 keeps the current radius.
func (s *Scene) BeginErase(r int) { s.eraser.Begin(r) }

func (s *Scene) EndErase() { s.eraser.End() }

// AddDab paints one eraser dab at p. Nothing happens while the eraser is
// inactive.
func (s *Scene) AddDab(p image.Point) bool {
	if !s.eraser.Active() {
		return false
	}
	s.eraser.moveTo(p)
	return s.store(KindEraser, Dab{Center: p, Radius: s.eraser.Radius(), Seq: s.seq.Next()})
}

// AddInterpolatedDabs paints a dab at every step from a to b, excluding a,
// so fast pointer motion leaves no gaps. It returns the number of dabs
// stored.
func (s *Scene) AddInterpolatedDabs(a, b image.Point) int {
	if !s.eraser.Active() {
		return 0
	}
	n := 0
	for _, p := range Interpolate(a, b) {
		if s.AddDab(p) {
			n++
		}
	}
	s.eraser.moveTo(b)
	return n
}

// EraseTo continues the active stroke from the last dab to p.
func (s *Scene) EraseTo(p image.Point) int {
	return s.AddInterpolatedDabs(s.eraser.Last(), p)
}

// DeleteNear removes one shape whose outline passes within the scene
// threshold of p. Stores are searched line, triangle, rect, circle, oval,
// then freehand; within a store the first match by insertion order wins.
// Eraser dabs are never removed.
func (s *Scene) DeleteNear(p image.Point) bool {
	type deleter struct {
		kind Kind
		del  func(image.Point, int) bool
	}
	for _, d := range []deleter{
		{KindLine, s.lines.DeleteNear},
		{KindTriangle, s.triangles.DeleteNear},
		{KindRect, s.rects.DeleteNear},
		{KindCircle, s.circles.DeleteNear},
		{KindOval, s.ovals.DeleteNear},
		{KindFreehand, s.freehand.DeleteNear},
	} {
		if d.del(p, s.threshold) {
			s.tracef("scene: delete %s near %v", d.kind, p)
			s.MarkDirty()
			return true
		}
	}
	return false
}

// DeleteAllNear deletes until nothing remains near p and returns how many
// shapes were removed.
func (s *Scene) DeleteAllNear(p image.Point) int {
	n := 0
	for s.DeleteNear(p) {
		n++
	}
	return n
}

func (s *Scene) resetStores() {
	s.freehand.ResetAll()
	s.lines.ResetAll()
	s.triangles.ResetAll()
	s.rects.ResetAll()
	s.circles.ResetAll()
	s.ovals.ResetAll()
	s.dabs.ResetAll()
}

// Clear drops every shape, all pending input and the background, and paints
// the raster target white. The z sequence continues.
func (s *Scene) Clear() {
	s.resetStores()
	s.CancelPending()
	s.background = nil
	s.ensureCanvas()
	s.canvas.Clear(EraseColor)
	s.dirty = false
	s.tracef("scene: clear")
}

// SetBackground installs img as the base layer and drops every shape so the
// scene equals the image.
func (s *Scene) SetBackground(img image.Image) {
	s.resetStores()
	s.CancelPending()
	s.background = img
	s.MarkDirty()
}

// ReplaceBackground swaps the base layer and keeps committed shapes.
func (s *Scene) ReplaceBackground(img image.Image) {
	s.background = img
	s.MarkDirty()
}

func (s *Scene) Background() image.Image { return s.background }

func (s *Scene) MarkDirty() { s.dirty = true }

func (s *Scene) Dirty() bool { return s.dirty }

// Count returns the number of committed shapes of kind.
func (s *Scene) Count(kind Kind) int {
	if l := s.layer(kind); l != nil {
		return l.Len()
	}
	return 0
}

// Total is the number of committed shapes across every kind.
func (s *Scene) Total() int {
	n := 0
	for _, k := range Kinds {
		n += s.Count(k)
	}
	return n
}

// ZAt returns the z of the i'th shape of kind, or NoZ.
func (s *Scene) ZAt(kind Kind, i int) int {
	if l := s.layer(kind); l != nil {
		return l.ZAt(i)
	}
	return NoZ
}

// DrawAt replays the i'th shape of kind onto surf.
func (s *Scene) DrawAt(kind Kind, surf Surface, i int) {
	if l := s.layer(kind); l != nil {
		l.DrawAt(surf, i)
	}
}

// Preview draws the in-progress shape of kind against cursor onto surf,
// which must not be the scene's own raster target.
func (s *Scene) Preview(surf Surface, kind Kind, cursor image.Point) {
	if p := s.Pending(kind); p != nil {
		p.Preview(surf, cursor, s.preview, s.style.Pattern)
	}
}

func (s *Scene) ensureCanvas() {
	if s.canvas != nil && s.canvas.Image().Bounds().Size() == s.size {
		return
	}
	s.canvas = raster.New(image.NewRGBA(image.Rectangle{Max: s.size}))
	s.canvas.Clear(EraseColor)
	s.dirty = true
}

// Canvas returns the raster target, rebuilding it first when dirty.
func (s *Scene) Canvas() *raster.Canvas {
	if s.dirty || s.canvas == nil {
		s.Rebuild()
	}
	return s.canvas
}

// Image is shorthand for Canvas().Image().
func (s *Scene) Image() *image.RGBA { return s.Canvas().Image() }
