package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/sketchboard/internal/config"
)

type configCmd struct {
	*root
	fs   *flag.FlagSet
	path string
	out  io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *configCmd) Program() string { return c.root.Program() + " config" }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.path, "file", "", "config file written by save (default: the loaded file or ~/.config/sketchboard/config.rc)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		fmt.Fprint(c.out, c.config.String())
		return nil
	case "path":
		path, err := c.savePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, path)
		return nil
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

// savePath prefers -file, then the file the config was loaded from, then
// the per-user default.
func (c *configCmd) savePath() (string, error) {
	if c.path != "" {
		return c.path, nil
	}
	if p := config.NewLoader(version, configPathOverride).GetConfigPath(); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

func (c *configCmd) runSave() error {
	path, err := c.savePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.config.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
