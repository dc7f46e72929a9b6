package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sketchboard/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func record(t *testing.T) *[]sent {
	t.Helper()
	var got []sent
	orig := send
	send = func(title, body string, opts platform.Options) error {
		got = append(got, sent{title: title, body: body, opts: opts})
		return nil
	}
	t.Cleanup(func() { send = orig })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := record(t)
	n := New(DefaultPreferences())
	n.Save("x.png")
	n.Copy("")
	n.Load("screen")
	if len(*got) != 0 {
		t.Fatalf("sent %v with every event disabled", *got)
	}
	var nilNotifier *Notifier
	nilNotifier.Enable(EventCopy, true)
	nilNotifier.Copy("x")
}

func TestCopyUsesTemplate(t *testing.T) {
	got := record(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("")
	if len(*got) != 1 || (*got)[0].body != "Copied canvas to clipboard" || (*got)[0].opts.AppName != "Sketchboard" {
		t.Fatalf("sent %+v", *got)
	}
}

func TestLoadUsesImageFileAsIcon(t *testing.T) {
	got := record(t)
	bg := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(bg, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventLoad, true)
	n.Load(bg)
	n.Load("screen")
	if len(*got) != 2 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	if s := (*got)[0]; s.opts.IconPath != bg || !strings.Contains(s.body, "bg.png") {
		t.Fatalf("file load notification %+v", s)
	}
	if s := (*got)[1]; s.opts.IconPath != "" || s.body != "Loaded background screen" {
		t.Fatalf("label load notification %+v", s)
	}
}

func TestSaveIconOnlyForImages(t *testing.T) {
	got := record(t)
	dir := t.TempDir()
	pdf := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	n.Save(pdf)
	if len(*got) != 1 || (*got)[0].opts.IconPath != "" || (*got)[0].body != "Saved "+pdf {
		t.Fatalf("sent %+v", *got)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SKETCHBOARD_NOTIFY_TITLE", "Board")
	t.Setenv("SKETCHBOARD_NOTIFY_SAVE_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Board" || prefs.Templates[EventSave] != "Wrote %s" {
		t.Fatalf("prefs = %+v", prefs)
	}
	if prefs.Templates[EventCopy] != DefaultPreferences().Templates[EventCopy] {
		t.Fatalf("copy template changed: %q", prefs.Templates[EventCopy])
	}
}
