package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/example/sketchboard/internal/appstate"
	"github.com/example/sketchboard/internal/capture"
	"github.com/example/sketchboard/internal/clipboard"
	"github.com/example/sketchboard/internal/imagefile"
)

// Replaced in tests.
var (
	captureScreenFn = capture.Screen
	listMonitorsFn  = capture.Monitors
	readClipboardFn = clipboard.ReadImage
	runWindowFn     = func(a *appstate.AppState) { a.Run() }
)

// openCmd opens the drawing window.
type openCmd struct {
	*root
	fs            *flag.FlagSet
	output        string
	background    string
	watch         bool
	captureScreen bool
	display       string
	cursor        bool
	fromClipboard bool
	size          string
	verbose       bool
	listDisplays  bool
	out           io.Writer
}

func (o *openCmd) FlagSet() *flag.FlagSet { return o.fs }

func (o *openCmd) Program() string { return o.root.Program() + " open" }

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	o := &openCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(o)
	fs.StringVar(&o.output, "output", "", "file written by Save (extension picks png, jpg, bmp or pdf)")
	fs.StringVar(&o.background, "background", "", "image file used as the background layer")
	fs.BoolVar(&o.watch, "watch", false, "reload the background when its file changes")
	fs.BoolVar(&o.captureScreen, "capture", false, "grab the screen as the background layer")
	fs.StringVar(&o.display, "display", "", "monitor to grab with -capture (index, name or primary)")
	fs.BoolVar(&o.cursor, "cursor", false, "include the mouse cursor when grabbing the screen")
	fs.BoolVar(&o.fromClipboard, "from-clipboard", false, "use the clipboard image as the background layer")
	fs.StringVar(&o.size, "size", "", "canvas size as WIDTHxHEIGHT (default from config)")
	fs.BoolVar(&o.verbose, "v", false, "log commits and deletions")
	fs.BoolVar(&o.listDisplays, "list-displays", false, "print the monitors -display can select and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.listDisplays {
		return o, nil
	}
	if fs.NArg() > 0 {
		if o.background != "" {
			return nil, &UsageError{of: o}
		}
		o.background = fs.Arg(0)
	}
	sources := 0
	for _, on := range []bool{o.captureScreen, o.fromClipboard, o.background != ""} {
		if on {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("choose one background source: -background, -capture or -from-clipboard")
	}
	if o.watch && o.background == "" {
		return nil, fmt.Errorf("-watch needs a background file")
	}
	if o.output == "" {
		o.output = "sketch.png"
		if r.config.SaveDir != "" {
			o.output = filepath.Join(r.config.SaveDir, o.output)
		}
	}
	if _, err := imagefile.FormatFor(o.output); err != nil {
		return nil, err
	}
	return o, nil
}

// initialBackground returns the image the window starts with, if any.
func (o *openCmd) initialBackground() (image.Image, string, error) {
	switch {
	case o.captureScreen:
		img, err := captureScreenFn(capture.Options{Display: o.display, IncludeCursor: o.cursor})
		if err != nil {
			return nil, "", fmt.Errorf("failed to capture screen: %w", err)
		}
		return img, "screen", nil
	case o.fromClipboard:
		img, err := readClipboardFn()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return img, "clipboard image", nil
	case o.background != "":
		img, err := imagefile.Load(o.background)
		if err != nil {
			return nil, "", err
		}
		return img, o.background, nil
	}
	return nil, "", nil
}

func (o *openCmd) printDisplays() error {
	mons, err := listMonitorsFn()
	if err != nil {
		return fmt.Errorf("failed to list displays: %w", err)
	}
	for _, m := range mons {
		primary := ""
		if m.Primary {
			primary = " primary"
		}
		fmt.Fprintf(o.out, "%d\t%s\t%dx%d+%d+%d%s\n", m.Index, m.Name, m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y, primary)
	}
	return nil
}

func (o *openCmd) Run() error {
	if o.listDisplays {
		return o.printDisplays()
	}
	size, err := parseSize(o.size)
	if err != nil {
		return err
	}
	img, source, err := o.initialBackground()
	if err != nil {
		return err
	}
	sc := o.newScene(size, o.verbose)
	if img != nil {
		sc.SetBackground(imagefile.Fit(img, sc.Size()))
		o.notifier.Load(source)
	}
	a := appstate.New(
		appstate.WithScene(sc),
		appstate.WithOutput(o.output),
		appstate.WithBackground(o.background),
		appstate.WithWatch(o.watch),
		appstate.WithTheme(o.activeTheme),
		appstate.WithPalette(o.palette()),
		appstate.WithEraserStep(o.config.EraserStep),
		appstate.WithCaptureOptions(capture.Options{Display: o.display, IncludeCursor: o.cursor}),
		appstate.WithNotifier(o.notifier),
	)
	runWindowFn(a)
	return nil
}
