package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/sketches
width = 1024
height = 768
eraser_radius = 400
fill = false
fill_color = lightgray
pattern = dashed

[palette]
sky = #87CEEB
sand = "#F4A460"

[notify]
save = true
copy = false
load = true

[theme.my_custom_theme]
Background = #111111
PreviewStroke = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/sketches" {
		t.Errorf("Expected save_dir '/tmp/sketches', got '%s'", cfg.SaveDir)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.EraserRadius != 100 {
		t.Errorf("eraser_radius = %d, want clamp to 100", cfg.EraserRadius)
	}
	if cfg.Fill || cfg.Pattern != "dashed" {
		t.Errorf("fill=%v pattern=%q", cfg.Fill, cfg.Pattern)
	}
	if cfg.FillColor != (color.RGBA{211, 211, 211, 255}) {
		t.Errorf("fill_color = %v", cfg.FillColor)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[0].Name != "sky" || cfg.Palette[1].Color != (color.RGBA{0xF4, 0xA4, 0x60, 255}) {
		t.Errorf("palette = %+v", cfg.Palette)
	}
	if !cfg.Notify.Save || cfg.Notify.Copy || !cfg.Notify.Load {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.EraserRadius != 16 || cfg.DeleteThreshold != 10 || !cfg.Fill {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.Palette) != 3 {
		t.Errorf("palette = %+v", cfg.Palette)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"width = -3",
		"pattern = wavy",
		"fill = maybe",
		"[palette]\nbad = #12",
		"[notify]\nsave = sometimes",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/sketches
width = 640
fill_color = #FFC8C8

[palette]
rose = #FFC8C8

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Width != cfg2.Width || cfg.FillColor != cfg2.FillColor {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if len(cfg2.Palette) != 1 || cfg2.Palette[0] != cfg.Palette[0] {
		t.Errorf("Palette mismatch: %+v vs %+v", cfg.Palette, cfg2.Palette)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sb.rc")
	if err := os.WriteFile(path, []byte("width = 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q", got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 {
		t.Fatalf("width = %d", cfg.Width)
	}
}
