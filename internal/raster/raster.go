package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Pattern selects how a stroke is laid down.
type Pattern int

const (
	PatternSolid Pattern = iota
	PatternDashed
)

func (p Pattern) String() string {
	if p == PatternDashed {
		return "dashed"
	}
	return "solid"
}

// Mode is the paint combine mode used when a pixel is written.
type Mode int

const (
	// ModeCopy overwrites the destination pixel.
	ModeCopy Mode = iota
	// ModeXOR inverts the destination channels by the source colour.
	ModeXOR
)

// Style is the mutable drawing state of a Canvas. Callers save it with
// Style, change what they need and put it back with SetStyle.
type Style struct {
	Fill   color.RGBA
	Stroke color.RGBA
	Mode   Mode
}

// Dash lengths in pixels along a Bresenham walk.
const (
	dashOn  = 6
	dashOff = 4
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// Canvas draws aliased primitives onto an RGBA image.
type Canvas struct {
	img   *image.RGBA
	style Style
}

// New wraps img. The initial style is black stroke, white fill, copy mode.
func New(img *image.RGBA) *Canvas {
	return &Canvas{img: img, style: Style{Fill: White, Stroke: Black, Mode: ModeCopy}}
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Style() Style { return c.style }

func (c *Canvas) SetStyle(s Style) { c.style = s }

// Clear fills the whole image with col regardless of the combine mode.
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
}

// Blit copies src onto the canvas with its origin at the canvas origin.
func (c *Canvas) Blit(src image.Image) {
	if src == nil {
		return
	}
	b := src.Bounds()
	dst := image.Rect(0, 0, b.Dx(), b.Dy()).Add(c.img.Bounds().Min)
	draw.Draw(c.img, dst, src, b.Min, draw.Src)
}

func (c *Canvas) plot(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return
	}
	if c.style.Mode == ModeXOR {
		old := c.img.RGBAAt(x, y)
		c.img.SetRGBA(x, y, color.RGBA{old.R ^ col.R, old.G ^ col.G, old.B ^ col.B, old.A})
		return
	}
	c.img.SetRGBA(x, y, col)
}

// StrokeSegment draws a one pixel line from a to b in the stroke colour.
func (c *Canvas) StrokeSegment(a, b image.Point, p Pattern) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	step := 0
	for {
		if p != PatternDashed || step%(dashOn+dashOff) < dashOn {
			c.plot(x0, y0, c.style.Stroke)
		}
		step++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeEllipse draws a closed solid outline centred at center. Equal radii
// use the midpoint circle walk.
func (c *Canvas) StrokeEllipse(center image.Point, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	if rx == ry {
		c.strokeCircle(center.X, center.Y, rx)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	prev := image.Point{}
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		pt := image.Pt(
			center.X+int(math.Round(math.Cos(angle)*float64(rx))),
			center.Y+int(math.Round(math.Sin(angle)*float64(ry))),
		)
		if i > 0 {
			c.StrokeSegment(prev, pt, PatternSolid)
		}
		prev = pt
	}
}

func (c *Canvas) strokeCircle(cx, cy, r int) {
	x := r
	y := 0
	err := 1 - r
	col := c.style.Stroke
	for x >= y {
		pts := [][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}}
		for _, p := range pts {
			c.plot(cx+p[0], cy+p[1], col)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// FillRect fills the inclusive rectangle l..r, t..b.
func (c *Canvas) FillRect(l, t, r, b int, col color.RGBA) {
	if l > r {
		l, r = r, l
	}
	if t > b {
		t, b = b, t
	}
	clip := image.Rect(l, t, r+1, b+1).Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	if c.style.Mode == ModeCopy {
		draw.Draw(c.img, clip, &image.Uniform{col}, image.Point{}, draw.Src)
		return
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			c.plot(x, y, col)
		}
	}
}

// FillDisk fills every pixel within r of center.
func (c *Canvas) FillDisk(center image.Point, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.plot(center.X+dx, center.Y+dy, col)
			}
		}
	}
}

// FillPolygon fills the closed polygon through pts. Coverage comes from an
// x/image/vector rasterizer sized to the polygon bounds; pixels at least half
// covered are painted so fills stay aliased like the outlines.
func (c *Canvas) FillPolygon(pts []image.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	bounds := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bounds.Min.X = min(bounds.Min.X, p.X)
		bounds.Min.Y = min(bounds.Min.Y, p.Y)
		bounds.Max.X = max(bounds.Max.X, p.X)
		bounds.Max.Y = max(bounds.Max.Y, p.Y)
	}
	bounds.Max = bounds.Max.Add(image.Pt(1, 1))
	if bounds.Intersect(c.img.Bounds()).Empty() {
		return
	}
	// Vertices sit on pixel centres so edges match the stroked outline.
	org := bounds.Min
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src
	r.MoveTo(float32(pts[0].X-org.X)+0.5, float32(pts[0].Y-org.Y)+0.5)
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X-org.X)+0.5, float32(p.Y-org.Y)+0.5)
	}
	r.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				c.plot(org.X+x, org.Y+y, col)
			}
		}
	}
}
