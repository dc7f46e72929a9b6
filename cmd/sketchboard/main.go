package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/config"
	"github.com/example/sketchboard/internal/notify"
	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
	"github.com/example/sketchboard/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	loadAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("sketchboard", flag.ContinueOnError),
		program:  "sketchboard",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after loading a background")

	// Precedence: CLI > Env > Config > Default. The flag defaults to "" so
	// Run can tell whether it was given.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Names(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SKETCHBOARD_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.notifier.Enable(notify.EventLoad, r.loadAlerts)
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
		case errors.Is(err, flag.ErrHelp):
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// newScene builds a scene configured from the loaded config. size overrides
// the configured canvas size when non-zero.
func (r *root) newScene(size image.Point, verbose bool) *scene.Scene {
	cfg := r.config
	if size == (image.Point{}) {
		size = image.Pt(cfg.Width, cfg.Height)
	}
	pattern := raster.PatternSolid
	if cfg.Pattern == "dashed" {
		pattern = raster.PatternDashed
	}
	opts := []scene.Option{
		scene.WithSize(size.X, size.Y),
		scene.WithEraserRadius(cfg.EraserRadius),
		scene.WithThreshold(cfg.DeleteThreshold),
		scene.WithStyle(scene.Style{Pattern: pattern, Fill: cfg.Fill, FillColor: cfg.FillColor}),
	}
	if r.activeTheme != nil {
		opts = append(opts, scene.WithPreviewColor(r.activeTheme.PreviewStroke))
	}
	if verbose {
		opts = append(opts, scene.WithLogger(log.Printf))
	}
	return scene.New(opts...)
}

func (r *root) palette() []colorspec.Swatch {
	if len(r.config.Palette) == 0 {
		return colorspec.DefaultPalette
	}
	return r.config.Palette
}

// parseSize reads WIDTHxHEIGHT. An empty string is the zero point.
func parseSize(s string) (image.Point, error) {
	if s == "" {
		return image.Point{}, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil || x <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q: bad width", s)
	}
	y, err := strconv.Atoi(h)
	if err != nil || y <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q: bad height", s)
	}
	return image.Pt(x, y), nil
}
