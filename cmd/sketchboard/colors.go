package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/sketchboard/internal/colorspec"
)

// colorsCmd lists the fill palette and, with -all, every colour name the
// script and config parsers accept.
type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	all bool
	out io.Writer
}

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *colorsCmd) Program() string { return c.root.Program() + " colors" }

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	c := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.all, "all", false, "also list every named colour")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *colorsCmd) Run() error {
	for i, sw := range c.palette() {
		fmt.Fprintf(c.out, "%d\t%s\t%s\n", i, sw.Name, colorspec.Hex(sw.Color))
	}
	if !c.all {
		return nil
	}
	for _, name := range colorspec.Names() {
		col, err := colorspec.Parse(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "-\t%s\t%s\n", name, colorspec.Hex(col))
	}
	return nil
}
