// Package notify raises desktop notifications after the canvas is saved,
// copied or given a new background.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/sketchboard/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	EventSave Event = "save"
	EventCopy Event = "copy"
	EventLoad Event = "load"
)

// Events lists every event in a stable order.
var Events = []Event{EventSave, EventCopy, EventLoad}

// Preferences holds the notification title, display timeout and one body
// template per event. Templates take a single %s for the detail.
type Preferences struct {
	Title     string
	Timeout   time.Duration
	Templates map[Event]string
}

func DefaultPreferences() Preferences {
	return Preferences{
		Title:   "Sketchboard",
		Timeout: 5 * time.Second,
		Templates: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to clipboard",
			EventLoad: "Loaded background %s",
		},
	}
}

// LoadPreferences applies SKETCHBOARD_NOTIFY_TITLE and
// SKETCHBOARD_NOTIFY_<EVENT>_TEXT over the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SKETCHBOARD_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range Events {
		key := "SKETCHBOARD_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// send is replaced in tests.
var send = platform.Notify

// Notifier sends notifications for the events switched on with Enable.
// A nil Notifier is valid and silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

func New(prefs Preferences) *Notifier {
	n := &Notifier{prefs: prefs, enabled: map[Event]bool{}}
	n.prefs.Templates = make(map[Event]string, len(prefs.Templates))
	for ev, tmpl := range prefs.Templates {
		n.prefs.Templates[ev] = tmpl
	}
	return n
}

func (n *Notifier) Enable(event Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[event] = on
}

// Save reports a written file. PNG output doubles as the notification icon.
func (n *Notifier) Save(path string) {
	n.notify(EventSave, path, true)
}

func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "canvas"
	}
	n.notify(EventCopy, detail, false)
}

// Load reports a new background. source is either an image file, which is
// then shown as the icon, or a label such as "screen".
func (n *Notifier) Load(source string) {
	n.notify(EventLoad, source, true)
}

func (n *Notifier) notify(event Event, detail string, fileDetail bool) {
	if n == nil || !n.enabled[event] {
		return
	}
	tmpl := strings.TrimSpace(n.prefs.Templates[event])
	if tmpl == "" {
		return
	}
	opts := platform.Options{AppName: n.prefs.Title, Timeout: n.prefs.Timeout}
	detail = strings.TrimSpace(detail)
	if fileDetail {
		detail, opts.IconPath = fileIcon(detail)
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, detail))
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// fileIcon resolves detail to an absolute path when it names an existing
// file, and returns it as the icon when it is an image the notification
// daemon can show.
func fileIcon(detail string) (string, string) {
	if detail == "" {
		return detail, ""
	}
	abs, err := filepath.Abs(detail)
	if err != nil {
		return detail, ""
	}
	if st, err := os.Stat(abs); err != nil || st.IsDir() {
		return detail, ""
	}
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".png", ".jpg", ".jpeg", ".bmp":
		return abs, abs
	}
	return abs, ""
}
