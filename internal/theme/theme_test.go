package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\n# comment\nPreviewStroke: #FF0000\nunknownkey: #000000\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.PreviewStroke != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("PreviewStroke = %v", th.PreviewStroke)
	}
	if th.ButtonBorder != Default().ButtonBorder {
		t.Errorf("unset field lost its default")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: #12\n")); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	names := Names()
	if len(names) < 3 {
		t.Fatalf("embedded themes = %v", names)
	}
	for _, n := range names {
		th, err := l.Load(n)
		if err != nil {
			t.Fatalf("Load(%q): %v", n, err)
		}
		if th.Name == "" {
			t.Errorf("%s: empty name", n)
		}
	}
	def, _ := l.Load("default")
	if *def != *Default() {
		t.Errorf("default.theme drifted from Default(): %+v", def)
	}
}

func TestLoaderSearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ocean.theme"), []byte("Name: Ocean\nBackground: #003366\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, SystemDir: t.TempDir()}
	th, err := l.Load("ocean")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Background != (color.RGBA{0, 0x33, 0x66, 255}) {
		t.Errorf("Background = %v", th.Background)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected error for missing theme")
	}
}

func TestFields(t *testing.T) {
	fs := Fields(Default())
	if len(fs) != 14 || fs[0].Name != "Background" {
		t.Fatalf("fields = %+v", fs)
	}
}
