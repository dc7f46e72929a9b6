//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"golang.design/x/clipboard"
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

func writePNG(data []byte) error {
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func readPNG() ([]byte, error) {
	return clipboard.Read(clipboard.FmtImage), nil
}
