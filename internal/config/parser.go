package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchboard/internal/colorspec"
	"github.com/example/sketchboard/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	// Context for parsing
	var currentSection string
	var currentTheme *theme.Theme
	paletteSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			if currentSection == "palette" && !paletteSeen {
				// A palette section replaces the built-in swatches.
				cfg.Palette = nil
				paletteSeen = true
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentTheme != nil:
			if err := theme.Set(currentTheme, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentSection == "palette":
			col, err := colorspec.Parse(value)
			if err != nil {
				return nil, fmt.Errorf("error in section [palette]: %w", err)
			}
			cfg.Palette = append(cfg.Palette, colorspec.Swatch{Name: key, Color: col})
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = append(cfg.Palette, colorspec.DefaultPalette...)
	}
	return cfg, nil
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "width":
		return setPositive(&cfg.Width, key, value)
	case "height":
		return setPositive(&cfg.Height, key, value)
	case "eraser_radius":
		if err := setPositive(&cfg.EraserRadius, key, value); err != nil {
			return err
		}
		cfg.EraserRadius = min(cfg.EraserRadius, 100)
	case "eraser_step":
		return setPositive(&cfg.EraserStep, key, value)
	case "delete_threshold":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for key %s: %q", key, value)
		}
		cfg.DeleteThreshold = n
	case "fill":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		cfg.Fill = b
	case "fill_color":
		col, err := colorspec.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		cfg.FillColor = col
	case "pattern":
		switch p := strings.ToLower(value); p {
		case "solid", "dashed":
			cfg.Pattern = p
		default:
			return fmt.Errorf("invalid pattern %q: want solid or dashed", value)
		}
	}
	return nil
}

func setPositive(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid value for key %s: %q must be a positive integer", key, value)
	}
	*dst = n
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	case "load":
		n.Load = b
	}
	return nil
}
