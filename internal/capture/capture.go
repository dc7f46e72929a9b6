// Package capture grabs the desktop so it can be used as a drawing
// background.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

// Options tune a screen grab.
type Options struct {
	// Display selects a monitor by index, "#index", "primary" or a name
	// fragment. Empty keeps the whole desktop.
	Display string
	// IncludeCursor asks the portal to embed the pointer.
	IncludeCursor bool
}

// Monitor describes one connected output in desktop coordinates.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

var (
	errNoMonitors  = errors.New("no monitors available")
	errUnsupported = errors.New("screen capture is not supported on this platform")
)

// Platform hooks, replaced in tests.
var (
	portalShot   = portalScreenshot
	rootShot     = rootScreenshot
	listMonitors = monitors
)

// Screen grabs the desktop. The desktop portal is tried first so Wayland
// sessions work; the X11 root window is the fallback.
func Screen(opts Options) (*image.RGBA, error) {
	img, perr := portalShot(opts)
	if perr != nil {
		var xerr error
		img, xerr = rootShot()
		if xerr != nil {
			return nil, fmt.Errorf("capture screen: %w", errors.Join(perr, xerr))
		}
	}
	if opts.Display == "" {
		return img, nil
	}
	mons, err := listMonitors()
	if err != nil {
		return nil, fmt.Errorf("capture screen %q: %w", opts.Display, err)
	}
	mon, err := FindMonitor(mons, opts.Display)
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return cropToRect(img, mon.Rect)
}

// Monitors lists the connected outputs.
func Monitors() ([]Monitor, error) {
	return listMonitors()
}

// FindMonitor resolves selector against mons. An empty selector picks the
// first monitor.
func FindMonitor(mons []Monitor, selector string) (Monitor, error) {
	if len(mons) == 0 {
		return Monitor{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" {
		return mons[0], nil
	}
	if sel == "primary" {
		for _, m := range mons {
			if m.Primary {
				return m, nil
			}
		}
		return mons[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(mons) {
			return Monitor{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return mons[idx], nil
	}
	for _, m := range mons {
		if strings.Contains(strings.ToLower(m.Name), sel) {
			return m, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %q not found", selector)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("monitor %v outside captured image", rect)
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
