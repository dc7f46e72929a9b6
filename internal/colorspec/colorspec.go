// Package colorspec parses colour names and hex values used on the command
// line, in scripts and in config files.
package colorspec

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// DefaultPalette is the fill palette offered in the toolbar.
var DefaultPalette = []Swatch{
	{"blue", color.RGBA{200, 220, 255, 255}},
	{"green", color.RGBA{200, 255, 200, 255}},
	{"red", color.RGBA{255, 200, 200, 255}},
}

// Parse accepts an SVG colour name ("steelblue"), #RRGGBB or #RRGGBBAA.
func Parse(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := spec[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{uint8(val >> 16), uint8(val >> 8), uint8(val), 255}, nil
	}
	return color.RGBA{uint8(val >> 24), uint8(val >> 16), uint8(val >> 8), uint8(val)}, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Names returns every colour name Parse understands, sorted.
func Names() []string {
	names := append([]string(nil), colornames.Names...)
	sort.Strings(names)
	return names
}
