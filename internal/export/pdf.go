// Package export renders a scene to vector formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

// The dash pattern matches raster's Bresenham dash in page units.
var dashArray = []float64{6, 4}

// pdfSurface replays scene primitives as PDF path operators. One canvas
// pixel maps to one point; pixel centres sit at +0.5.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	size   image.Point
	style  raster.Style
	images int
}

func newPDFSurface(size image.Point) *pdfSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(size.X), Ht: float64(size.Y)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(1)
	pdf.SetLineCapStyle("square")
	s := &pdfSurface{pdf: pdf, size: size}
	s.SetStyle(raster.Style{Fill: raster.White, Stroke: raster.Black})
	return s
}

func centre(p image.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

func (s *pdfSurface) Style() raster.Style { return s.style }

func (s *pdfSurface) SetStyle(st raster.Style) {
	s.style = st
	s.pdf.SetDrawColor(int(st.Stroke.R), int(st.Stroke.G), int(st.Stroke.B))
	s.pdf.SetFillColor(int(st.Fill.R), int(st.Fill.G), int(st.Fill.B))
}

func (s *pdfSurface) fill(col color.RGBA) {
	s.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
}

func (s *pdfSurface) StrokeSegment(a, b image.Point, p raster.Pattern) {
	if p == raster.PatternDashed {
		s.pdf.SetDashPattern(dashArray, 0)
		defer s.pdf.SetDashPattern(nil, 0)
	}
	x1, y1 := centre(a)
	x2, y2 := centre(b)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) StrokeEllipse(c image.Point, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x, y := centre(c)
	s.pdf.Ellipse(x, y, float64(rx), float64(ry), 0, "D")
}

func (s *pdfSurface) FillPolygon(pts []image.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	poly := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		poly[i].X, poly[i].Y = centre(p)
	}
	s.fill(col)
	s.pdf.Polygon(poly, "F")
}

func (s *pdfSurface) FillRect(l, t, r, b int, col color.RGBA) {
	if l > r {
		l, r = r, l
	}
	if t > b {
		t, b = b, t
	}
	s.fill(col)
	s.pdf.Rect(float64(l), float64(t), float64(r-l+1), float64(b-t+1), "F")
}

func (s *pdfSurface) FillDisk(c image.Point, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	x, y := centre(c)
	s.fill(col)
	s.pdf.Circle(x, y, float64(r)+0.5, "F")
}

func (s *pdfSurface) Clear(col color.RGBA) {
	s.fill(col)
	s.pdf.Rect(0, 0, float64(s.size.X), float64(s.size.Y), "F")
}

// Blit embeds src as a PNG at the page origin, one point per pixel.
func (s *pdfSurface) Blit(src image.Image) {
	if src == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		s.pdf.SetError(fmt.Errorf("encode background: %w", err))
		return
	}
	s.images++
	name := fmt.Sprintf("background%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, &buf)
	b := src.Bounds()
	s.pdf.ImageOptions(name, 0, 0, float64(b.Dx()), float64(b.Dy()), false, opts, 0, "")
}

// PDF writes sc as a single page PDF sized to the canvas. Committed shapes
// become vector paths; a background image is embedded as a raster.
func PDF(w io.Writer, sc *scene.Scene) error {
	surf := newPDFSurface(sc.Size())
	sc.Replay(surf)
	if err := surf.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return surf.pdf.Output(w)
}

// SavePDF writes the PDF rendition of sc to path.
func SavePDF(path string, sc *scene.Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := PDF(f, sc); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
