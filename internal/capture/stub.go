//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import "image"

func portalScreenshot(Options) (*image.RGBA, error) { return nil, errUnsupported }

func rootScreenshot() (*image.RGBA, error) { return nil, errUnsupported }

func monitors() ([]Monitor, error) { return nil, errUnsupported }
