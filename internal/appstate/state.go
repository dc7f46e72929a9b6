package appstate

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchboard/internal/capture"
	"github.com/example/sketchboard/internal/clipboard"
	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/export"
	"github.com/example/sketchboard/internal/imagefile"
	"github.com/example/sketchboard/internal/notify"
	"github.com/example/sketchboard/internal/scene"
	"github.com/example/sketchboard/internal/theme"
)

const messageDuration = 2 * time.Second

// AppState holds everything the window needs: the scene it edits and the
// collaborators for saving, loading and notifications.
type AppState struct {
	Scene      *scene.Scene
	Output     string
	Background string
	Watch      bool
	Theme      *theme.Theme
	Palette    []colorspec.Swatch
	EraserStep int
	Capture    capture.Options
	Notifier   *notify.Notifier

	ctrl    *Controller
	message string
	until   time.Time
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithScene sets the scene edited by the window.
func WithScene(sc *scene.Scene) Option { return func(a *AppState) { a.Scene = sc } }

// WithOutput sets the path written by the save action. The extension picks
// the format.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithBackground sets the image file the load action reads.
func WithBackground(path string) Option { return func(a *AppState) { a.Background = path } }

// WithWatch reloads the background whenever its file changes.
func WithWatch(on bool) Option { return func(a *AppState) { a.Watch = on } }

func WithTheme(th *theme.Theme) Option { return func(a *AppState) { a.Theme = th } }

func WithPalette(p []colorspec.Swatch) Option { return func(a *AppState) { a.Palette = p } }

func WithEraserStep(step int) Option { return func(a *AppState) { a.EraserStep = step } }

func WithCaptureOptions(opts capture.Options) Option {
	return func(a *AppState) { a.Capture = opts }
}

func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// New creates an AppState. Unset fields get a fresh scene, the default
// theme and palette, and "sketch.png" as output.
func New(opts ...Option) *AppState {
	a := &AppState{Output: "sketch.png"}
	for _, o := range opts {
		o(a)
	}
	if a.Scene == nil {
		a.Scene = scene.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if len(a.Palette) == 0 {
		a.Palette = colorspec.DefaultPalette
	}
	a.ctrl = NewController(a.Scene, a.Palette, a.EraserStep, Actions{
		Save:    a.save,
		Load:    a.load,
		Copy:    a.copy,
		Paste:   a.paste,
		Capture: a.capture,
	})
	a.ctrl.OnError = func(name string, err error) {
		log.Printf("%s: %v", name, err)
		a.say(fmt.Sprintf("%s failed", name))
	}
	return a
}

// Controller exposes the input controller, mainly for tests.
func (a *AppState) Controller() *Controller { return a.ctrl }

func (a *AppState) say(msg string) {
	a.message = msg
	a.until = time.Now().Add(messageDuration)
}

func (a *AppState) currentMessage() string {
	if a.message != "" && time.Now().Before(a.until) {
		return a.message
	}
	return ""
}

// save rebuilds the canvas if needed and writes it to Output.
func (a *AppState) save() error {
	format, err := imagefile.FormatFor(a.Output)
	if err != nil {
		return err
	}
	if format == imagefile.FormatPDF {
		err = export.SavePDF(a.Output, a.Scene)
	} else {
		err = imagefile.Save(a.Output, a.Scene.Image())
	}
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("saved %s", a.Output)
	log.Print(msg)
	a.say(msg)
	a.Notifier.Save(a.Output)
	return nil
}

func (a *AppState) copy() error {
	if err := clipboard.WriteImage(a.Scene.Image()); err != nil {
		return err
	}
	a.say("image copied to clipboard")
	a.Notifier.Copy("canvas")
	return nil
}

// install fits img to the canvas and makes it the background, dropping
// every committed shape. source is a file path or a label.
func (a *AppState) install(img image.Image, source string) {
	fitted := imagefile.Fit(img, a.Scene.Size())
	a.Scene.SetBackground(fitted)
	msg := fmt.Sprintf("loaded %s", filepath.Base(source))
	log.Print(msg)
	a.say(msg)
	a.Notifier.Load(source)
}

func (a *AppState) load() error {
	if a.Background == "" {
		return errors.New("no background file set")
	}
	img, err := imagefile.Load(a.Background)
	if err != nil {
		return err
	}
	a.install(img, a.Background)
	return nil
}

func (a *AppState) paste() error {
	img, err := clipboard.ReadImage()
	if err != nil {
		return err
	}
	a.install(img, "clipboard image")
	return nil
}

func (a *AppState) capture() error {
	img, err := capture.Screen(a.Capture)
	if err != nil {
		return err
	}
	a.install(img, "screen")
	return nil
}

// reload swaps in a changed background file and keeps the shapes.
func (a *AppState) reload() {
	img, err := imagefile.Load(a.Background)
	if err != nil {
		log.Printf("reload %s: %v", a.Background, err)
		return
	}
	a.Scene.ReplaceBackground(imagefile.Fit(img, a.Scene.Size()))
	a.say(fmt.Sprintf("reloaded %s", filepath.Base(a.Background)))
}

// reloadEvent is sent to the window when the watched background changes.
type reloadEvent struct{}

// Run opens the window and blocks until it is closed.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	v := &view{ctrl: a.ctrl, bar: newToolbar(a.ctrl, a.Theme)}
	winSize := v.windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winSize.X, Height: winSize.Y, Title: windowTitle(a.Output)})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if a.Watch && a.Background != "" {
		if err := WatchFile(ctx, a.Background, watchDebounce, func() { w.Send(reloadEvent{}) }); err != nil {
			log.Printf("%v", err)
		}
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			winSize = e.Size()
		case paint.Event:
			a.paint(s, w, v, winSize)
		case reloadEvent:
			a.reload()
			w.Send(paint.Event{})
		case mouse.Event:
			if a.handleMouse(v, e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Code == key.CodeQ && e.Modifiers&key.ModControl != 0 {
				return
			}
			if a.ctrl.Key(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

// handleMouse routes e to the toolbar or the canvas and reports whether a
// repaint is needed. Releases always reach the controller so a stroke that
// ends over the toolbar is still closed.
func (a *AppState) handleMouse(v *view, e mouse.Event) bool {
	wp := image.Pt(int(e.X), int(e.Y))
	p := v.toCanvas(e.X, e.Y)
	if e.Direction == mouse.DirRelease {
		a.ctrl.Release(e.Button, p)
		return true
	}
	if wp.X < v.bar.width {
		if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
			return v.bar.Click(wp)
		}
		return v.bar.Hover(wp)
	}
	v.bar.Hover(wp)
	switch e.Direction {
	case mouse.DirPress:
		a.until = time.Time{}
		a.ctrl.Press(e.Button, p)
	case mouse.DirNone:
		a.ctrl.Move(p)
	}
	return true
}

func (a *AppState) paint(s screen.Screen, w screen.Window, v *view, sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(sz)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	v.render(b.RGBA(), a.currentMessage())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func windowTitle(path string) string {
	if path == "" {
		return "Sketchboard"
	}
	return "Sketchboard - " + filepath.Base(path)
}
