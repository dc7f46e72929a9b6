package appstate

import (
	"image"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

// KeyShortcut identifies a key combination.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Actions are the side effects a Controller can trigger outside the scene.
// Nil entries are ignored.
type Actions struct {
	Save    func() error
	Load    func() error
	Copy    func() error
	Paste   func() error
	Capture func() error
}

// Controller turns pointer and key input into scene operations. It holds no
// window state and can be driven directly from tests.
type Controller struct {
	Scene *scene.Scene

	tool       scene.Kind
	palette    []colorspec.Swatch
	colorIdx   int
	eraserStep int
	cursor     image.Point
	held       bool
	actions    Actions
	keys       map[KeyShortcut]func() error

	// OnError receives failures from Actions.
	OnError func(name string, err error)
}

// NewController binds a controller to sc. The freehand tool is selected and
// the first palette entry whose colour matches the scene fill is current.
func NewController(sc *scene.Scene, palette []colorspec.Swatch, eraserStep int, actions Actions) *Controller {
	if len(palette) == 0 {
		palette = colorspec.DefaultPalette
	}
	if eraserStep <= 0 {
		eraserStep = scene.EraserStep
	}
	c := &Controller{
		Scene:      sc,
		tool:       scene.KindFreehand,
		palette:    palette,
		eraserStep: eraserStep,
		actions:    actions,
	}
	fill := sc.Style().FillColor
	for i, sw := range palette {
		if sw.Color == fill {
			c.colorIdx = i
			break
		}
	}
	c.keys = c.shortcuts()
	return c
}

func (c *Controller) shortcuts() map[KeyShortcut]func() error {
	m := map[KeyShortcut]func() error{}
	bind := func(ks KeyShortcut, fn func()) {
		m[ks] = func() error { fn(); return nil }
	}
	tool := func(k scene.Kind) func() {
		return func() { c.SetTool(k) }
	}
	bind(KeyShortcut{Rune: 'f'}, tool(scene.KindFreehand))
	bind(KeyShortcut{Rune: 'l'}, tool(scene.KindLine))
	bind(KeyShortcut{Rune: 't'}, tool(scene.KindTriangle))
	bind(KeyShortcut{Rune: 'r'}, tool(scene.KindRect))
	bind(KeyShortcut{Rune: 'c'}, tool(scene.KindCircle))
	bind(KeyShortcut{Rune: 'o'}, tool(scene.KindOval))
	bind(KeyShortcut{Rune: 'e'}, tool(scene.KindEraser))
	bind(KeyShortcut{Rune: 'd'}, c.TogglePattern)
	bind(KeyShortcut{Rune: 'g'}, c.ToggleFill)
	bind(KeyShortcut{Rune: '+'}, func() { c.AdjustEraser(c.eraserStep) })
	bind(KeyShortcut{Rune: '='}, func() { c.AdjustEraser(c.eraserStep) })
	bind(KeyShortcut{Rune: '-'}, func() { c.AdjustEraser(-c.eraserStep) })
	bind(KeyShortcut{Code: key.CodeEscape}, c.Scene.CancelPending)
	bind(KeyShortcut{Rune: 'n', Modifiers: key.ModControl}, c.Clear)
	bind(KeyShortcut{Code: key.CodeN, Modifiers: key.ModControl}, c.Clear)

	for _, a := range []struct {
		r    rune
		code key.Code
		name string
	}{
		{'s', key.CodeS, "save"},
		{'o', key.CodeO, "load"},
		{'c', key.CodeC, "copy"},
		{'v', key.CodeV, "paste"},
		{'g', key.CodeG, "capture"},
	} {
		fn := func() error { return c.action(a.name) }
		// Some drivers report a control character instead of the letter.
		m[KeyShortcut{Rune: a.r, Modifiers: key.ModControl}] = fn
		m[KeyShortcut{Code: a.code, Modifiers: key.ModControl}] = fn
	}
	return m
}

func (c *Controller) action(name string) error {
	var fn func() error
	switch name {
	case "save":
		fn = c.actions.Save
	case "load":
		fn = c.actions.Load
	case "copy":
		fn = c.actions.Copy
	case "paste":
		fn = c.actions.Paste
	case "capture":
		fn = c.actions.Capture
	}
	if fn == nil {
		return nil
	}
	return fn()
}

// Tool returns the selected kind.
func (c *Controller) Tool() scene.Kind { return c.tool }

// SetTool switches the active tool. Switching discards any partially placed
// shape and ends open strokes.
func (c *Controller) SetTool(k scene.Kind) {
	if k == c.tool {
		return
	}
	c.Scene.CancelPending()
	c.held = false
	c.tool = k
}

func (c *Controller) Palette() []colorspec.Swatch { return c.palette }

func (c *Controller) ColorIndex() int { return c.colorIdx }

// SelectColor makes palette entry i the fill colour for later shapes.
func (c *Controller) SelectColor(i int) {
	if i < 0 || i >= len(c.palette) {
		return
	}
	c.colorIdx = i
	c.Scene.SetFillColor(c.palette[i].Color)
}

func (c *Controller) TogglePattern() {
	if c.Scene.Style().Pattern == raster.PatternDashed {
		c.Scene.SetPattern(raster.PatternSolid)
		return
	}
	c.Scene.SetPattern(raster.PatternDashed)
}

func (c *Controller) ToggleFill() { c.Scene.SetFill(!c.Scene.Style().Fill) }

func (c *Controller) AdjustEraser(delta int) { c.Scene.Eraser().Adjust(delta) }

func (c *Controller) Clear() {
	c.held = false
	c.Scene.Clear()
}

// Cursor is the last pointer position in canvas coordinates.
func (c *Controller) Cursor() image.Point { return c.cursor }

// Press handles a button press at canvas point p.
func (c *Controller) Press(b mouse.Button, p image.Point) {
	c.cursor = p
	switch b {
	case mouse.ButtonRight:
		c.Scene.DeleteAllNear(p)
	case mouse.ButtonLeft:
		c.held = true
		switch c.tool {
		case scene.KindFreehand:
			c.Scene.FreehandTo(p)
		case scene.KindEraser:
			c.Scene.BeginErase(0)
			c.Scene.AddDab(p)
		default:
			c.Scene.AddPoint(c.tool, p)
		}
	}
}

// Move tracks the pointer. Freehand and eraser strokes continue only while
// the left button is held; anchors are never placed by dragging.
func (c *Controller) Move(p image.Point) {
	c.cursor = p
	if !c.held {
		return
	}
	switch c.tool {
	case scene.KindFreehand:
		c.Scene.FreehandTo(p)
	case scene.KindEraser:
		c.Scene.EraseTo(p)
	}
}

// Release ends a held stroke.
func (c *Controller) Release(b mouse.Button, p image.Point) {
	c.cursor = p
	if b != mouse.ButtonLeft || !c.held {
		return
	}
	c.held = false
	switch c.tool {
	case scene.KindFreehand:
		c.Scene.FreehandRelease()
	case scene.KindEraser:
		c.Scene.EndErase()
	}
}

// Key runs the shortcut bound to e, if any, and reports whether one was.
// Printable keys match on the lower-cased rune with shift ignored, so '+'
// works on layouts where it needs shift.
func (c *Controller) Key(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	fn, ok := c.keys[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
	if e.Rune > 0 {
		if rfn, rok := c.keys[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers &^ key.ModShift}]; rok {
			fn, ok = rfn, true
		}
	}
	if !ok {
		return false
	}
	if err := fn(); err != nil {
		c.fail("key", err)
	}
	return true
}

// Invoke runs a named action: save, load, copy, paste or capture. Unknown
// names are ignored.
func (c *Controller) Invoke(name string) {
	if err := c.action(name); err != nil {
		c.fail(name, err)
	}
}

func (c *Controller) fail(name string, err error) {
	if c.OnError != nil {
		c.OnError(name, err)
	}
}

// Preview draws the overlay for the active tool onto surf, which must not
// be the scene's raster target.
func (c *Controller) Preview(surf scene.Surface) {
	if c.tool.Anchors() > 0 {
		c.Scene.Preview(surf, c.tool, c.cursor)
	}
}
