//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

func connectRoot() (*xgb.Conn, *xproto.SetupInfo, *xproto.ScreenInfo, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect X server: %w", err)
	}
	setup := xproto.Setup(conn)
	if setup == nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("xproto screen unavailable")
	}
	return conn, setup, screen, nil
}

// rootScreenshot reads the whole root window.
func rootScreenshot() (*image.RGBA, error) {
	conn, setup, screen, err := connectRoot()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	w, h := screen.WidthInPixels, screen.HeightInPixels
	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(screen.Root), 0, 0, w, h, ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("root pixels: %w", err)
	}
	return xImageToRGBA(setup, reply, int(w), int(h), "root window")
}

func monitors() ([]Monitor, error) {
	conn, _, screen, err := connectRoot()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}
	primary := randr.Output(0)
	if p, err := randr.GetOutputPrimary(conn, screen.Root).Reply(); err == nil {
		primary = p.Output
	}
	out := make([]Monitor, 0, len(res.Outputs))
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		out = append(out, Monitor{
			Index:   len(out),
			Name:    strings.TrimSpace(string(info.Name)),
			Rect:    image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height)),
			Primary: output == primary,
		})
	}
	if len(out) == 0 {
		return nil, errNoMonitors
	}
	return out, nil
}
