package theme

import (
	"image/color"
)

// Theme defines the colours of the toolbar and the preview overlay. The
// drawing itself is never themed: committed outlines are always black on a
// white canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area outside the canvas
	Foreground color.RGBA // Status text

	// Toolbar
	ToolbarBackground color.RGBA
	ToolbarDivider    color.RGBA

	// Buttons
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected tool or enabled toggle
	ButtonText             color.RGBA
	ButtonTextActive       color.RGBA
	ButtonBorder           color.RGBA

	// Palette swatches
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA

	// Overlay drawn on top of the canvas, never into it
	PreviewStroke color.RGBA
	EraserCursor  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{220, 220, 220, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ToolbarDivider:         color.RGBA{160, 160, 160, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive: color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonTextActive:       color.RGBA{255, 255, 255, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		SwatchBorder:           color.RGBA{80, 80, 80, 255},
		SwatchSelected:         color.RGBA{0, 0, 0, 255},
		PreviewStroke:          color.RGBA{211, 211, 211, 255},
		EraserCursor:           color.RGBA{128, 128, 128, 255},
	}
}
