package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

// view composes window frames. The scene canvas is copied into an overlay
// buffer first so previews and the eraser cursor never reach the canvas.
type view struct {
	ctrl    *Controller
	bar     *toolbar
	overlay *image.RGBA
}

// canvasOrigin is where canvas (0,0) sits in window coordinates.
func (v *view) canvasOrigin() image.Point { return image.Pt(v.bar.width, 0) }

// toCanvas maps a window position to canvas coordinates.
func (v *view) toCanvas(x, y float32) image.Point {
	return image.Pt(int(x), int(y)).Sub(v.canvasOrigin())
}

// windowSize is the smallest window that shows the whole canvas and toolbar.
func (v *view) windowSize() image.Point {
	sz := v.ctrl.Scene.Size()
	return image.Pt(v.bar.width+sz.X, max(sz.Y, v.bar.Height()))
}

// render draws one frame into dst.
func (v *view) render(dst *image.RGBA, message string) {
	th := v.bar.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	src := v.ctrl.Scene.Image()
	if v.overlay == nil || v.overlay.Bounds() != src.Bounds() {
		v.overlay = image.NewRGBA(src.Bounds())
	}
	copy(v.overlay.Pix, src.Pix)
	surf := raster.New(v.overlay)
	v.ctrl.Preview(surf)
	if v.ctrl.Tool() == scene.KindEraser {
		r := v.ctrl.Scene.Eraser().Radius()
		surf.SetStyle(raster.Style{Stroke: th.EraserCursor, Mode: raster.ModeCopy})
		surf.StrokeEllipse(v.ctrl.Cursor(), r, r)
	}
	o := v.canvasOrigin()
	draw.Draw(dst, v.overlay.Bounds().Add(o), v.overlay, image.Point{}, draw.Src)

	v.bar.Draw(dst, dst.Bounds().Dy())
	if message != "" {
		drawMessage(dst, image.Rectangle{Min: o, Max: o.Add(src.Bounds().Size())}, message, th.Foreground)
	}
}

func drawMessage(dst *image.RGBA, area image.Rectangle, msg string, fg color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	w := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := area.Min.X + (area.Dx()-w)/2
	py := area.Max.Y - descent - 12
	box := image.Rect(px-8, py-ascent-4, px+w+8, py+descent+4)
	draw.Draw(dst, box, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
	strokeRect(dst, box, fg)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
