package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
	Load bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string

	Width           int
	Height          int
	EraserRadius    int
	EraserStep      int
	DeleteThreshold int
	Fill            bool
	FillColor       color.RGBA
	Pattern         string

	Palette []colorspec.Swatch
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:           "", // Default to empty to allow fallback to Env/Default
		Width:           800,
		Height:          600,
		EraserRadius:    16,
		EraserStep:      2,
		DeleteThreshold: 10,
		Fill:            true,
		FillColor:       colorspec.DefaultPalette[0].Color,
		Pattern:         "solid",
		Palette:         append([]colorspec.Swatch(nil), colorspec.DefaultPalette...),
		Themes:          make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "eraser_radius = %d\n", c.EraserRadius)
	fmt.Fprintf(&sb, "eraser_step = %d\n", c.EraserStep)
	fmt.Fprintf(&sb, "delete_threshold = %d\n", c.DeleteThreshold)
	fmt.Fprintf(&sb, "fill = %v\n", c.Fill)
	fmt.Fprintf(&sb, "fill_color = %s\n", colorspec.Hex(c.FillColor))
	fmt.Fprintf(&sb, "pattern = %s\n", c.Pattern)
	sb.WriteString("\n")

	sb.WriteString("[palette]\n")
	for _, sw := range c.Palette {
		fmt.Fprintf(&sb, "%s = %s\n", sw.Name, colorspec.Hex(sw.Color))
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, colorspec.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
