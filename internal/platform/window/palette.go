package window

import (
	"image/color"

	"github.com/vovakirdan/dodge/internal/core"
)

// Background fills the window behind the board.
var Background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:     {R: 0xe6, G: 0x29, B: 0x37, A: 0xff},
	core.ColorIndigo:  {R: 0x4b, G: 0x00, B: 0x82, A: 0xff},
	core.ColorOrange:  {R: 0xff, G: 0xa1, B: 0x00, A: 0xff},
	core.ColorGreen:   {R: 0x00, G: 0xe4, B: 0x30, A: 0xff},
	core.ColorBlue:    {R: 0x00, G: 0x79, B: 0xf1, A: 0xff},
	core.ColorYellow:  {R: 0xfd, G: 0xf9, B: 0x00, A: 0xff},
	core.ColorGray:    {R: 0x82, G: 0x82, B: 0x82, A: 0xff},
}

// RGBA returns the display color of a palette color.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
