package appstate

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

func newTestController(actions Actions) *Controller {
	sc := scene.New(scene.WithSize(100, 100))
	return NewController(sc, colorspec.DefaultPalette, 2, actions)
}

func click(c *Controller, p image.Point) {
	c.Press(mouse.ButtonLeft, p)
	c.Release(mouse.ButtonLeft, p)
}

func press(r rune, mods key.Modifiers) key.Event {
	return key.Event{Rune: r, Modifiers: mods, Direction: key.DirPress}
}

func TestAnchoredToolCommitsOnClicks(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindRect)
	click(c, image.Pt(10, 10))
	if got := c.Scene.Count(scene.KindRect); got != 0 {
		t.Fatalf("rect count after one anchor = %d", got)
	}
	click(c, image.Pt(40, 40))
	if got := c.Scene.Count(scene.KindRect); got != 1 {
		t.Fatalf("rect count = %d, want 1", got)
	}
}

func TestDragDoesNotPlaceAnchors(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindTriangle)
	c.Press(mouse.ButtonLeft, image.Pt(10, 10))
	for x := 11; x < 30; x++ {
		c.Move(image.Pt(x, 10))
	}
	c.Release(mouse.ButtonLeft, image.Pt(30, 10))
	if got := c.Scene.Pending(scene.KindTriangle).Len(); got != 1 {
		t.Fatalf("pending anchors = %d, want 1", got)
	}
	if c.Cursor() != image.Pt(30, 10) {
		t.Fatalf("cursor = %v", c.Cursor())
	}
}

func TestToolSwitchCancelsPending(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindLine)
	click(c, image.Pt(5, 5))
	c.SetTool(scene.KindCircle)
	if got := c.Scene.Pending(scene.KindLine).Len(); got != 0 {
		t.Fatalf("line anchors after switch = %d, want 0", got)
	}
	c.SetTool(scene.KindLine)
	click(c, image.Pt(50, 50))
	if got := c.Scene.Count(scene.KindLine); got != 0 {
		t.Fatalf("line committed from stale anchor")
	}
}

func TestFreehandDragAndRelease(t *testing.T) {
	c := newTestController(Actions{})
	c.Press(mouse.ButtonLeft, image.Pt(0, 0))
	c.Move(image.Pt(5, 0))
	c.Move(image.Pt(10, 0))
	c.Release(mouse.ButtonLeft, image.Pt(10, 0))
	c.Move(image.Pt(20, 0))
	if got := c.Scene.Count(scene.KindFreehand); got != 2 {
		t.Fatalf("freehand segments = %d, want 2", got)
	}
	c.Press(mouse.ButtonLeft, image.Pt(30, 0))
	if got := c.Scene.Count(scene.KindFreehand); got != 2 {
		t.Fatalf("new chain joined the old one: %d segments", got)
	}
}

func TestEraserDrag(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindEraser)
	c.Press(mouse.ButtonLeft, image.Pt(0, 0))
	c.Move(image.Pt(10, 0))
	if got := c.Scene.Count(scene.KindEraser); got != 11 {
		t.Fatalf("dabs = %d, want 11", got)
	}
	c.Release(mouse.ButtonLeft, image.Pt(10, 0))
	c.Move(image.Pt(40, 0))
	if got := c.Scene.Count(scene.KindEraser); got != 11 {
		t.Fatalf("dabs after release = %d, want 11", got)
	}
}

func TestRightClickDeletesEverythingNear(t *testing.T) {
	c := newTestController(Actions{})
	for i := 0; i < 2; i++ {
		c.Scene.AddPoint(scene.KindLine, image.Pt(0, 50))
		c.Scene.AddPoint(scene.KindLine, image.Pt(100, 50))
	}
	c.Press(mouse.ButtonRight, image.Pt(50, 52))
	if got := c.Scene.Count(scene.KindLine); got != 0 {
		t.Fatalf("lines left = %d", got)
	}
}

func TestKeyShortcuts(t *testing.T) {
	c := newTestController(Actions{})
	start := c.Scene.Eraser().Radius()
	c.Key(press('+', key.ModShift))
	if got := c.Scene.Eraser().Radius(); got != start+2 {
		t.Fatalf("radius after + = %d, want %d", got, start+2)
	}
	c.Key(press('-', 0))
	c.Key(press('-', 0))
	if got := c.Scene.Eraser().Radius(); got != start-2 {
		t.Fatalf("radius after -- = %d, want %d", got, start-2)
	}
	c.Key(press('r', 0))
	if c.Tool() != scene.KindRect {
		t.Fatalf("tool = %v, want rect", c.Tool())
	}
	c.Key(press('d', 0))
	if c.Scene.Style().Pattern != raster.PatternDashed {
		t.Fatalf("pattern not toggled")
	}
	c.Key(press('g', 0))
	if c.Scene.Style().Fill {
		t.Fatalf("fill not toggled")
	}
	if c.Key(press('z', 0)) {
		t.Fatalf("unbound key reported handled")
	}
	if c.Key(key.Event{Rune: 'r', Direction: key.DirRelease}) {
		t.Fatalf("key release reported handled")
	}
}

func TestEscapeCancelsPending(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindOval)
	click(c, image.Pt(10, 10))
	c.Key(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
	if got := c.Scene.Pending(scene.KindOval).Len(); got != 0 {
		t.Fatalf("pending = %d after escape", got)
	}
}

func TestActionShortcuts(t *testing.T) {
	var saved, copied int
	boom := errors.New("boom")
	c := newTestController(Actions{
		Save: func() error { saved++; return nil },
		Copy: func() error { copied++; return boom },
	})
	var failed []string
	c.OnError = func(name string, err error) {
		if !errors.Is(err, boom) {
			t.Errorf("unexpected error %v", err)
		}
		failed = append(failed, name)
	}
	c.Key(press('s', key.ModControl))
	c.Key(key.Event{Code: key.CodeS, Modifiers: key.ModControl, Rune: -1, Direction: key.DirPress})
	if saved != 2 {
		t.Fatalf("save ran %d times, want 2", saved)
	}
	c.Invoke("copy")
	if copied != 1 || len(failed) != 1 || failed[0] != "copy" {
		t.Fatalf("copy=%d failed=%v", copied, failed)
	}
	c.Invoke("paste")
	c.Invoke("unknown")
	if len(failed) != 1 {
		t.Fatalf("nil actions should be ignored, failed=%v", failed)
	}
}

func TestSelectColor(t *testing.T) {
	c := newTestController(Actions{})
	c.SelectColor(2)
	if c.ColorIndex() != 2 || c.Scene.Style().FillColor != colorspec.DefaultPalette[2].Color {
		t.Fatalf("colour = %d %v", c.ColorIndex(), c.Scene.Style().FillColor)
	}
	c.SelectColor(9)
	if c.ColorIndex() != 2 {
		t.Fatalf("out of range index changed selection")
	}
}

func TestClearKeepsTool(t *testing.T) {
	c := newTestController(Actions{})
	c.SetTool(scene.KindCircle)
	click(c, image.Pt(50, 50))
	click(c, image.Pt(60, 50))
	c.Key(press('n', key.ModControl))
	if c.Scene.Total() != 0 || c.Scene.Dirty() {
		t.Fatalf("clear left total=%d dirty=%v", c.Scene.Total(), c.Scene.Dirty())
	}
	if c.Tool() != scene.KindCircle {
		t.Fatalf("tool changed by clear")
	}
}
