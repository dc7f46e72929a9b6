package appstate

import (
	"image"
	"testing"

	"github.com/example/sketchboard/internal/scene"
	"github.com/example/sketchboard/internal/theme"
)

func newTestView(c *Controller) (*view, *image.RGBA) {
	v := &view{ctrl: c, bar: newToolbar(c, theme.Default())}
	return v, image.NewRGBA(image.Rectangle{Max: v.windowSize()})
}

func TestRenderDrawsPreviewOnFrameOnly(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindLine)
	click(c, image.Pt(10, 50))
	c.Move(image.Pt(60, 50))

	v, dst := newTestView(c)
	v.render(dst, "")

	o := v.canvasOrigin()
	if got := dst.RGBAAt(o.X+30, o.Y+50); got != scene.PreviewColor {
		t.Fatalf("frame pixel = %v, want preview colour", got)
	}
	if got := c.Scene.Image().RGBAAt(30, 50); got != scene.EraseColor {
		t.Fatalf("canvas pixel = %v, preview leaked into canvas", got)
	}
	if c.Scene.Dirty() {
		t.Fatalf("scene dirty after render")
	}
}

func TestRenderShowsCommittedShapes(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindLine)
	click(c, image.Pt(10, 20))
	click(c, image.Pt(90, 20))

	v, dst := newTestView(c)
	v.render(dst, "saved x.png")
	o := v.canvasOrigin()
	if got := dst.RGBAAt(o.X+50, o.Y+20); got != scene.OutlineColor {
		t.Fatalf("frame pixel = %v, want outline colour", got)
	}
}

func TestRenderEraserCursor(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindEraser)
	c.Move(image.Pt(50, 50))

	v, dst := newTestView(c)
	v.render(dst, "")
	r := c.Scene.Eraser().Radius()
	o := v.canvasOrigin()
	if got := dst.RGBAAt(o.X+50+r, o.Y+50); got != theme.Default().EraserCursor {
		t.Fatalf("cursor pixel = %v", got)
	}
	if c.Scene.Count(scene.KindEraser) != 0 {
		t.Fatalf("hovering the eraser painted dabs")
	}
}

func TestToCanvas(t *testing.T) {
	c := newTestController(Actions{})
	v, _ := newTestView(c)
	if got := v.toCanvas(float32(v.bar.width+7), 9); got != image.Pt(7, 9) {
		t.Fatalf("toCanvas = %v", got)
	}
	sz := v.windowSize()
	if sz.X != v.bar.width+100 || sz.Y < 100 {
		t.Fatalf("window size = %v", sz)
	}
}
