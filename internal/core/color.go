package core

import "strings"

// Color is a symbolic color from the fixed game palette.
// Hosts decide how each color is displayed (ANSI code, RGBA, ...).
type Color uint8

// Palette colors.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorIndigo
	ColorOrange
	ColorGreen
	ColorBlue
	ColorYellow
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "DEFAULT",
	ColorWhite:   "WHITE",
	ColorRed:     "RED",
	ColorIndigo:  "INDIGO",
	ColorOrange:  "ORANGE",
	ColorGreen:   "GREEN",
	ColorBlue:    "BLUE",
	ColorYellow:  "YELLOW",
	ColorGray:    "GRAY",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseColor looks up a palette color by name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
