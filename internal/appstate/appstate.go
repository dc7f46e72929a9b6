// Package appstate is the interactive front end: a shiny window with a tool
// bar on the left and the scene canvas beside it.
package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
	"github.com/example/sketchboard/internal/theme"
)

const (
	buttonHeight = 24
	swatchSize   = 16
	swatchStep   = 18
	groupGap     = 6
)

var minToolbarWidth = 48

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// LabelButton is a text button. When active reports true the button is
// drawn pressed; tool buttons use it for the selected tool and toggles for
// their on state.
type LabelButton struct {
	label      string
	rect       image.Rectangle
	theme      *theme.Theme
	active     func() bool
	onActivate func()
}

func (lb *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, fg := lb.theme.ButtonBackground, lb.theme.ButtonText
	switch state {
	case StateHover:
		bg = lb.theme.ButtonBackgroundHover
	case StatePressed:
		bg, fg = lb.theme.ButtonBackgroundActive, lb.theme.ButtonTextActive
	}
	draw.Draw(dst, lb.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	strokeRect(dst, lb.rect, lb.theme.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(lb.rect.Min.X+4, lb.rect.Min.Y+16)}
	d.DrawString(lb.label)
}

func (lb *LabelButton) Rect() image.Rectangle { return lb.rect }

func (lb *LabelButton) SetRect(r image.Rectangle) { lb.rect = r }

func (lb *LabelButton) Activate() {
	if lb.onActivate != nil {
		lb.onActivate()
	}
}

func (lb *LabelButton) isActive() bool { return lb.active != nil && lb.active() }

type toolDef struct {
	label string
	kind  scene.Kind
}

var toolDefs = []toolDef{
	{"F:Free", scene.KindFreehand},
	{"L:Line", scene.KindLine},
	{"T:Tri", scene.KindTriangle},
	{"R:Rect", scene.KindRect},
	{"C:Circle", scene.KindCircle},
	{"O:Oval", scene.KindOval},
	{"E:Erase", scene.KindEraser},
}

// toolbar lays out and draws the left column: tool buttons, scene toggles,
// file actions and the fill palette.
type toolbar struct {
	theme   *theme.Theme
	ctrl    *Controller
	width   int
	groups  [][]*CacheButton
	buttons []*CacheButton
	swatch  []image.Rectangle
	bottom  int

	hoverButton int
	hoverSwatch int
}

func newToolbar(c *Controller, th *theme.Theme) *toolbar {
	tb := &toolbar{theme: th, ctrl: c, hoverButton: -1, hoverSwatch: -1}
	button := func(label string, active func() bool, fn func()) *CacheButton {
		return &CacheButton{Button: &LabelButton{label: label, theme: th, active: active, onActivate: fn}}
	}

	var tools []*CacheButton
	for _, td := range toolDefs {
		k := td.kind
		tools = append(tools, button(td.label, func() bool { return c.Tool() == k }, func() { c.SetTool(k) }))
	}
	settings := []*CacheButton{
		button("D:Dashed", func() bool { return c.Scene.Style().Pattern == raster.PatternDashed }, c.TogglePattern),
		button("G:Fill", func() bool { return c.Scene.Style().Fill }, c.ToggleFill),
		button("Clear", nil, c.Clear),
	}
	var files []*CacheButton
	for _, name := range []string{"save", "load", "copy", "paste", "capture"} {
		n := name
		files = append(files, button(actionLabels[n], nil, func() { c.Invoke(n) }))
	}
	tb.groups = [][]*CacheButton{tools, settings, files}
	for _, g := range tb.groups {
		tb.buttons = append(tb.buttons, g...)
	}

	d := &font.Drawer{Face: basicfont.Face7x13}
	tb.width = minToolbarWidth
	for _, cb := range tb.buttons {
		if w := d.MeasureString(cb.Button.(*LabelButton).label).Ceil() + 8; w > tb.width {
			tb.width = w
		}
	}
	tb.layout()
	return tb
}

var actionLabels = map[string]string{
	"save":    "Save",
	"load":    "Load",
	"copy":    "Copy",
	"paste":   "Paste",
	"capture": "Grab",
}

func (tb *toolbar) layout() {
	y := 0
	for gi, g := range tb.groups {
		if gi > 0 {
			y += groupGap
		}
		for _, cb := range g {
			cb.SetRect(image.Rect(0, y, tb.width, y+buttonHeight))
			y += buttonHeight
		}
	}
	y += groupGap
	tb.swatch = tb.swatch[:0]
	x := 4
	for range tb.ctrl.Palette() {
		if x+swatchSize > tb.width {
			x = 4
			y += swatchStep
		}
		tb.swatch = append(tb.swatch, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
	}
	tb.bottom = y + swatchStep + 16
}

// Height is the space the toolbar needs.
func (tb *toolbar) Height() int { return tb.bottom + 8 }

// hit returns the button and swatch indexes under p, -1 for none.
func (tb *toolbar) hit(p image.Point) (button, swatch int) {
	button, swatch = -1, -1
	if p.X < 0 || p.X >= tb.width {
		return
	}
	for i, cb := range tb.buttons {
		if p.In(cb.Rect()) {
			return i, -1
		}
	}
	for i, r := range tb.swatch {
		if p.In(r) {
			return -1, i
		}
	}
	return
}

// Hover updates the hover highlight and reports whether it changed.
func (tb *toolbar) Hover(p image.Point) bool {
	b, s := tb.hit(p)
	changed := b != tb.hoverButton || s != tb.hoverSwatch
	tb.hoverButton, tb.hoverSwatch = b, s
	return changed
}

// Click activates whatever is under p and reports whether anything was.
func (tb *toolbar) Click(p image.Point) bool {
	b, s := tb.hit(p)
	switch {
	case b >= 0:
		tb.buttons[b].Activate()
	case s >= 0:
		tb.ctrl.SelectColor(s)
	default:
		return false
	}
	return true
}

func (tb *toolbar) Draw(dst *image.RGBA, height int) {
	area := image.Rect(0, 0, tb.width, height)
	draw.Draw(dst, area, &image.Uniform{tb.theme.ToolbarBackground}, image.Point{}, draw.Src)
	for i, cb := range tb.buttons {
		state := StateDefault
		if cb.Button.(*LabelButton).isActive() {
			state = StatePressed
		} else if i == tb.hoverButton {
			state = StateHover
		}
		cb.Draw(dst, state)
	}
	for i, r := range tb.swatch {
		draw.Draw(dst, r, &image.Uniform{tb.ctrl.Palette()[i].Color}, image.Point{}, draw.Src)
		border := tb.theme.SwatchBorder
		if i == tb.ctrl.ColorIndex() {
			border = tb.theme.SwatchSelected
			strokeRect(dst, r.Inset(-1), border)
		} else if i == tb.hoverSwatch {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		strokeRect(dst, r, border)
	}

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(tb.theme.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(4, tb.bottom)}
	d.DrawString(fmt.Sprintf("r=%d", tb.ctrl.Scene.Eraser().Radius()))
	for y := 0; y < height; y++ {
		dst.SetRGBA(tb.width-1, y, tb.theme.ToolbarDivider)
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	c := raster.New(dst)
	c.SetStyle(raster.Style{Stroke: col, Mode: raster.ModeCopy})
	tl, tr := r.Min, image.Pt(r.Max.X-1, r.Min.Y)
	bl, br := image.Pt(r.Min.X, r.Max.Y-1), r.Max.Sub(image.Pt(1, 1))
	c.StrokeSegment(tl, tr, raster.PatternSolid)
	c.StrokeSegment(tr, br, raster.PatternSolid)
	c.StrokeSegment(br, bl, raster.PatternSolid)
	c.StrokeSegment(bl, tl, raster.PatternSolid)
}
