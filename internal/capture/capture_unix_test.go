//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/jezek/xgb/xproto"
)

func TestPortalOptions(t *testing.T) {
	prev := portalHandleToken
	portalHandleToken = func() string { return "tok" }
	t.Cleanup(func() { portalHandleToken = prev })

	for _, tc := range []struct {
		cursor bool
		want   string
	}{{false, "hidden"}, {true, "embedded"}} {
		v := portalOptions(Options{IncludeCursor: tc.cursor})
		if got := v["cursor_mode"].Value().(string); got != tc.want {
			t.Errorf("cursor_mode = %q, want %q", got, tc.want)
		}
		if got := v["interactive"].Value().(bool); got {
			t.Errorf("interactive = true")
		}
		if got := v["handle_token"].Value().(string); got != "tok" {
			t.Errorf("handle_token = %q", got)
		}
	}
}

func TestPortalResult(t *testing.T) {
	ok := map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/Screenshot%20one.png")}
	path, err := portalResult([]any{uint32(0), ok})
	if err != nil {
		t.Fatalf("portalResult: %v", err)
	}
	if path != "/tmp/Screenshot one.png" {
		t.Fatalf("path = %q", path)
	}
	if _, err := portalResult([]any{uint32(1), ok}); err == nil {
		t.Fatal("cancelled request should fail")
	}
	if _, err := portalResult([]any{uint32(0), map[string]dbus.Variant{}}); err == nil {
		t.Fatal("missing uri should fail")
	}
	if _, err := portalResult(nil); err == nil {
		t.Fatal("short body should fail")
	}
}

func TestXImageToRGBA(t *testing.T) {
	setup := &xproto.SetupInfo{
		ImageByteOrder: xproto.ImageOrderLSBFirst,
		PixmapFormats:  []xproto.Format{{Depth: 24, BitsPerPixel: 32}},
	}
	// two pixels per row, BGRX
	reply := &xproto.GetImageReply{Depth: 24, Data: []byte{
		0x10, 0x20, 0x30, 0x00, 0x01, 0x02, 0x03, 0x00,
		0xAA, 0xBB, 0xCC, 0x00, 0x00, 0x00, 0xFF, 0x00,
	}}
	img, err := xImageToRGBA(setup, reply, 2, 2, "test")
	if err != nil {
		t.Fatalf("xImageToRGBA: %v", err)
	}
	if got := img.RGBAAt(0, 0); got.R != 0x30 || got.G != 0x20 || got.B != 0x10 || got.A != 0xFF {
		t.Fatalf("pixel(0,0) = %v", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 0xFF || got.B != 0 {
		t.Fatalf("pixel(1,1) = %v", got)
	}

	setup.ImageByteOrder = xproto.ImageOrderMSBFirst
	img, err = xImageToRGBA(setup, reply, 2, 2, "test")
	if err != nil {
		t.Fatalf("xImageToRGBA msb: %v", err)
	}
	if got := img.RGBAAt(0, 0); got.R != 0x20 || got.G != 0x30 || got.B != 0x00 {
		t.Fatalf("msb pixel(0,0) = %v", got)
	}
}

func TestXImageToRGBARejects(t *testing.T) {
	setup := &xproto.SetupInfo{PixmapFormats: []xproto.Format{{Depth: 16, BitsPerPixel: 16}}}
	reply := &xproto.GetImageReply{Depth: 16, Data: make([]byte, 8)}
	if _, err := xImageToRGBA(setup, reply, 2, 2, "test"); err == nil {
		t.Fatal("16 bpp should be rejected")
	}
	if _, err := xImageToRGBA(nil, reply, 2, 2, "test"); err == nil {
		t.Fatal("nil setup should be rejected")
	}
}
