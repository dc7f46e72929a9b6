//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = "/org/freedesktop/portal/desktop"
	portalResponse = "org.freedesktop.portal.Request.Response"
	portalTimeout  = 30 * time.Second
)

var portalHandleToken = func() string {
	return fmt.Sprintf("sketchboard_%d", time.Now().UnixNano())
}

func portalScreenshot(opts Options) (*image.RGBA, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("dbus connect: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Printf("dbus close: %v", cerr)
		}
	}()

	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)

	var handle dbus.ObjectPath
	obj := conn.Object(portalDest, portalPath)
	call := obj.Call("org.freedesktop.portal.Screenshot.Screenshot", 0, "", portalOptions(opts))
	if call.Err != nil {
		return nil, fmt.Errorf("portal screenshot call: %w", call.Err)
	}
	if err := call.Store(&handle); err != nil {
		return nil, fmt.Errorf("portal screenshot response: %w", err)
	}

	rule := fmt.Sprintf("type='signal',interface='org.freedesktop.portal.Request',member='Response',path='%s'", handle)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
		return nil, fmt.Errorf("portal screenshot subscribe: %w", err)
	}
	defer conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, rule)

	timeout := time.After(portalTimeout)
	for {
		select {
		case sig, ok := <-sigc:
			if !ok {
				return nil, errors.New("portal screenshot: bus closed")
			}
			if sig.Path != handle || sig.Name != portalResponse {
				continue
			}
			path, err := portalResult(sig.Body)
			if err != nil {
				return nil, err
			}
			return loadPNG(path)
		case <-timeout:
			return nil, errors.New("portal screenshot: timed out")
		}
	}
}

func portalOptions(opts Options) map[string]dbus.Variant {
	cursor := "hidden"
	if opts.IncludeCursor {
		cursor = "embedded"
	}
	return map[string]dbus.Variant{
		"interactive":  dbus.MakeVariant(false),
		"modal":        dbus.MakeVariant(false),
		"handle_token": dbus.MakeVariant(portalHandleToken()),
		"cursor_mode":  dbus.MakeVariant(cursor),
	}
}

// portalResult extracts the file path from a Request.Response body
// (response code, results).
func portalResult(body []any) (string, error) {
	if len(body) < 2 {
		return "", errors.New("portal screenshot: short response")
	}
	if code, ok := body[0].(uint32); ok && code != 0 {
		return "", fmt.Errorf("portal screenshot: request ended with code %d", code)
	}
	res, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return "", errors.New("portal screenshot: malformed results")
	}
	v, ok := res["uri"]
	if !ok {
		return "", errors.New("portal screenshot: response missing image uri")
	}
	uri, ok := v.Value().(string)
	if !ok {
		return "", errors.New("portal screenshot: uri is not a string")
	}
	if u, err := url.Parse(uri); err == nil && u.Scheme == "file" {
		return u.Path, nil
	}
	return strings.TrimPrefix(uri, "file://"), nil
}

// loadPNG decodes the portal's temporary file and removes it.
func loadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("close %s: %v", path, cerr)
		}
		if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			log.Printf("remove %s: %v", path, rerr)
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}
