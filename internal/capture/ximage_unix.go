//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"

	"github.com/jezek/xgb/xproto"
)

// xImageToRGBA converts a ZPixmap reply of 24 or 32 bit TrueColor pixels.
// Servers in MSB first order store ARGB; the common LSB order stores BGRA.
func xImageToRGBA(setup *xproto.SetupInfo, reply *xproto.GetImageReply, width, height int, what string) (*image.RGBA, error) {
	switch {
	case setup == nil:
		return nil, fmt.Errorf("xproto setup unavailable")
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%s has empty geometry", what)
	case reply == nil || len(reply.Data) == 0:
		return nil, fmt.Errorf("%s pixels: empty image data", what)
	}

	bpp := 0
	for _, f := range setup.PixmapFormats {
		if f.Depth == reply.Depth {
			bpp = int(f.BitsPerPixel) / 8
			break
		}
	}
	if bpp < 3 {
		return nil, fmt.Errorf("unsupported %s depth %d", what, reply.Depth)
	}
	stride := len(reply.Data) / height
	if stride*height != len(reply.Data) || stride < width*bpp {
		return nil, fmt.Errorf("%s pixels: unexpected stride", what)
	}

	msb := setup.ImageByteOrder == xproto.ImageOrderMSBFirst
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := reply.Data[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			px := row[x*bpp : x*bpp+bpp]
			d := dst[x*4 : x*4+4]
			if msb {
				// [A] R G B with the padding byte first on 32 bit.
				px = px[bpp-3:]
				d[0], d[1], d[2] = px[0], px[1], px[2]
			} else {
				d[0], d[1], d[2] = px[2], px[1], px[0]
			}
			// Depth 24 leaves the pad byte undefined; treat it as opaque.
			d[3] = 0xFF
			if reply.Depth == 32 {
				if msb {
					d[3] = row[x*bpp]
				} else {
					d[3] = px[3]
				}
			}
		}
	}
	return img, nil
}
