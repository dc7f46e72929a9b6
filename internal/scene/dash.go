package scene

import (
	"image"
	"math"

	"github.com/example/sketchboard/internal/raster"
)

// Dashed circle and oval outlines are approximated by chords taken every
// DashStepDegrees around the parametric curve. Within each run of
// DashRun+GapRun chords the first DashRun are drawn. The look depends on
// these exact numbers, not on the radius.
const (
	DashStepDegrees = 6
	DashRun         = 3
	GapRun          = 3
)

// DashChords returns the chords drawn for a dashed ellipse outline.
func DashChords(center image.Point, rx, ry int) [][2]image.Point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	segs := int(math.Ceil(360.0 / DashStepDegrees))
	run := DashRun + GapRun
	out := make([][2]image.Point, 0, segs/run*DashRun+DashRun)
	for s := 0; s < segs; s++ {
		if s%run >= DashRun {
			continue
		}
		a0 := float64(s*DashStepDegrees) * math.Pi / 180
		a1 := float64((s+1)*DashStepDegrees) * math.Pi / 180
		out = append(out, [2]image.Point{
			ellipsePoint(center, rx, ry, a0),
			ellipsePoint(center, rx, ry, a1),
		})
	}
	return out
}

func ellipsePoint(c image.Point, rx, ry int, angle float64) image.Point {
	return image.Pt(
		c.X+int(math.Round(float64(rx)*math.Cos(angle))),
		c.Y+int(math.Round(float64(ry)*math.Sin(angle))),
	)
}

// strokeOutline draws a circle or oval outline in the current stroke colour.
func strokeOutline(surf Surface, center image.Point, rx, ry int, p raster.Pattern) {
	if rx <= 0 || ry <= 0 {
		return
	}
	if p != raster.PatternDashed {
		surf.StrokeEllipse(center, rx, ry)
		return
	}
	for _, ch := range DashChords(center, rx, ry) {
		surf.StrokeSegment(ch[0], ch[1], raster.PatternSolid)
	}
}
