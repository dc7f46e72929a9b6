// Package script replays textual drawing commands against a scene. Each
// line is one command; blank lines and lines starting with # are skipped.
//
//	pattern solid|dashed
//	fill on|off
//	color NAME|#RRGGBB
//	line X1 Y1 X2 Y2
//	rect X1 Y1 X2 Y2
//	circle CX CY QX QY        centre and a point on the rim
//	oval CX CY QX QY          centre and a point giving both radii
//	triangle X1 Y1 X2 Y2 X3 Y3
//	point KIND X Y            one anchor click for an anchored kind
//	freehand X Y X Y ...      one held-button stroke
//	erase R X Y [X Y ...]     one eraser drag; R<=0 keeps the radius
//	radius R                  set the eraser radius
//	delete X Y                delete everything near the point
//	cancel                    drop pending anchors
//	clear
//	background PATH           load PATH as the base layer
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/raster"
	"github.com/example/sketchboard/internal/scene"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

// Command is one parsed script line.
type Command struct {
	Line int
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// arity gives the allowed argument counts. A negative max means any even
// count of at least min.
var arity = map[string][2]int{
	"pattern":    {1, 1},
	"fill":       {1, 1},
	"color":      {1, 1},
	"line":       {4, 4},
	"rect":       {4, 4},
	"circle":     {4, 4},
	"oval":       {4, 4},
	"triangle":   {6, 6},
	"point":      {3, 3},
	"freehand":   {4, -1},
	"erase":      {3, -1},
	"radius":     {1, 1},
	"delete":     {2, 2},
	"cancel":     {0, 0},
	"clear":      {0, 0},
	"background": {1, 1},
}

// Parse reads every command from r, checking names and argument counts.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		c := Command{Line: n, Name: strings.ToLower(fields[0]), Args: fields[1:]}
		if err := check(c); err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

func check(c Command) error {
	a, ok := arity[c.Name]
	if !ok {
		return fmt.Errorf("line %d: %q: %w", c.Line, c.Name, ErrUnknownCommand)
	}
	n := len(c.Args)
	switch {
	case a[1] >= 0 && (n < a[0] || n > a[1]):
		return fmt.Errorf("line %d: %s takes %d: %w", c.Line, c.Name, a[0], ErrArguments)
	case a[1] < 0 && (n < a[0] || (n-a[0])%2 != 0):
		return fmt.Errorf("line %d: %s takes %d or more, pairs after that: %w", c.Line, c.Name, a[0], ErrArguments)
	}
	return nil
}

// Runner applies commands to a Scene.
type Runner struct {
	Scene *scene.Scene
	// LoadBackground resolves the background command. When nil the command
	// fails.
	LoadBackground func(path string) (image.Image, error)
}

// Run executes cmds in order and stops at the first error.
func (r *Runner) Run(cmds []Command) error {
	for _, c := range cmds {
		if err := r.Exec(c); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes one command.
func (r *Runner) Exec(c Command) error {
	if err := check(c); err != nil {
		return err
	}
	if err := r.exec(c); err != nil {
		return fmt.Errorf("line %d: %s: %w", c.Line, c.Name, err)
	}
	return nil
}

func (r *Runner) exec(c Command) error {
	s := r.Scene
	switch c.Name {
	case "pattern":
		switch strings.ToLower(c.Args[0]) {
		case "solid":
			s.SetPattern(raster.PatternSolid)
		case "dashed", "dash":
			s.SetPattern(raster.PatternDashed)
		default:
			return fmt.Errorf("unknown pattern %q", c.Args[0])
		}
	case "fill":
		on, err := parseSwitch(c.Args[0])
		if err != nil {
			return err
		}
		s.SetFill(on)
	case "color":
		col, err := colorspec.Parse(c.Args[0])
		if err != nil {
			return err
		}
		s.SetFillColor(col)
	case "line", "rect", "circle", "oval", "triangle":
		kind, _ := scene.ParseKind(c.Name)
		pts, err := points(c.Args)
		if err != nil {
			return err
		}
		s.CancelPending()
		for _, p := range pts {
			s.AddPoint(kind, p)
		}
	case "point":
		kind, ok := scene.ParseKind(strings.ToLower(c.Args[0]))
		if !ok || kind.Anchors() == 0 {
			return fmt.Errorf("%q is not an anchored shape", c.Args[0])
		}
		pts, err := points(c.Args[1:])
		if err != nil {
			return err
		}
		s.AddPoint(kind, pts[0])
	case "freehand":
		pts, err := points(c.Args)
		if err != nil {
			return err
		}
		for _, p := range pts {
			s.FreehandTo(p)
		}
		s.FreehandRelease()
	case "erase":
		radius, err := strconv.Atoi(c.Args[0])
		if err != nil {
			return fmt.Errorf("invalid radius %q", c.Args[0])
		}
		pts, err := points(c.Args[1:])
		if err != nil {
			return err
		}
		s.BeginErase(radius)
		s.AddDab(pts[0])
		for _, p := range pts[1:] {
			s.EraseTo(p)
		}
		s.EndErase()
	case "radius":
		radius, err := strconv.Atoi(c.Args[0])
		if err != nil {
			return fmt.Errorf("invalid radius %q", c.Args[0])
		}
		s.Eraser().SetRadius(radius)
	case "delete":
		pts, err := points(c.Args)
		if err != nil {
			return err
		}
		s.DeleteAllNear(pts[0])
	case "cancel":
		s.CancelPending()
	case "clear":
		s.Clear()
	case "background":
		if r.LoadBackground == nil {
			return errors.New("background images are not available")
		}
		img, err := r.LoadBackground(c.Args[0])
		if err != nil {
			return err
		}
		s.SetBackground(img)
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", v)
}

func points(args []string) ([]image.Point, error) {
	if len(args)%2 != 0 {
		return nil, ErrArguments
	}
	pts := make([]image.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[i])
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[i+1])
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}
