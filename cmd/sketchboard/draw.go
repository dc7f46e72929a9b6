package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/example/sketchboard/internal/clipboard"
	"github.com/example/sketchboard/internal/export"
	"github.com/example/sketchboard/internal/imagefile"
	"github.com/example/sketchboard/internal/script"
)

var writeClipboardFn = clipboard.WriteImage

// drawCmd replays a drawing script without opening a window and writes the
// composed canvas.
type drawCmd struct {
	*root
	fs            *flag.FlagSet
	output        string
	exprs         string
	background    string
	fromClipboard bool
	toClipboard   bool
	size          string
	verbose       bool
	scriptPath    string
	stdin         io.Reader
}

func (d *drawCmd) FlagSet() *flag.FlagSet { return d.fs }

func (d *drawCmd) Program() string { return d.root.Program() + " draw" }

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	d := &drawCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.output, "output", "", "output file path (png, jpg, bmp or pdf)")
	fs.StringVar(&d.exprs, "e", "", "script commands separated by ';' (run after SCRIPT)")
	fs.StringVar(&d.background, "background", "", "image file used as the background layer")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "use the clipboard image as the background layer")
	fs.BoolVar(&d.fromClipboard, "from-clip", false, "use the clipboard image as the background layer (alias)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.StringVar(&d.size, "size", "", "canvas size as WIDTHxHEIGHT (default from config)")
	fs.BoolVar(&d.verbose, "v", false, "log commits and deletions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		d.scriptPath = fs.Arg(0)
	default:
		return nil, &UsageError{of: d}
	}
	if d.scriptPath == "" && d.exprs == "" {
		return nil, &UsageError{of: d}
	}
	if d.output == "" && !d.toClipboard {
		return nil, errors.New("output file is required unless -to-clipboard is set")
	}
	if d.fromClipboard && d.background != "" {
		return nil, errors.New("-from-clipboard cannot be combined with -background")
	}
	if d.output != "" {
		if _, err := imagefile.FormatFor(d.output); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *drawCmd) commands() ([]script.Command, error) {
	var cmds []script.Command
	if d.scriptPath != "" {
		var r io.Reader = d.stdin
		if d.scriptPath != "-" {
			f, err := os.Open(d.scriptPath)
			if err != nil {
				return nil, fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			r = f
		}
		parsed, err := script.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.scriptPath, err)
		}
		cmds = parsed
	}
	if d.exprs != "" {
		parsed, err := script.ParseString(strings.ReplaceAll(d.exprs, ";", "\n"))
		if err != nil {
			return nil, fmt.Errorf("-e: %w", err)
		}
		cmds = append(cmds, parsed...)
	}
	return cmds, nil
}

func (d *drawCmd) Run() error {
	size, err := parseSize(d.size)
	if err != nil {
		return err
	}
	cmds, err := d.commands()
	if err != nil {
		return err
	}
	sc := d.newScene(size, d.verbose)
	switch {
	case d.fromClipboard:
		img, err := readClipboardFn()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		sc.SetBackground(imagefile.Fit(img, sc.Size()))
	case d.background != "":
		img, err := imagefile.Load(d.background)
		if err != nil {
			return err
		}
		sc.SetBackground(imagefile.Fit(img, sc.Size()))
	}

	runner := &script.Runner{Scene: sc, LoadBackground: func(path string) (image.Image, error) {
		img, err := imagefile.Load(path)
		if err != nil {
			return nil, err
		}
		return imagefile.Fit(img, sc.Size()), nil
	}}
	if err := runner.Run(cmds); err != nil {
		return err
	}

	if d.output != "" {
		format, _ := imagefile.FormatFor(d.output)
		if format == imagefile.FormatPDF {
			err = export.SavePDF(d.output, sc)
		} else {
			err = imagefile.Save(d.output, sc.Image())
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", d.output)
		d.notifier.Save(d.output)
	}
	if d.toClipboard {
		if err := writeClipboardFn(sc.Image()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "copied to clipboard")
		d.notifier.Copy("canvas")
	}
	return nil
}
