package engine

import (
	"image/color"

	"github.com/philipparndt/plateview/pkg/viewer"
)

// FallbackColor is used for unknown material names
var FallbackColor = viewer.Hex(0x888888)

var materialColors = map[string]color.RGBA{
	"aluminum": viewer.Hex(0xc0c0c0),
	"steel":    viewer.Hex(0x808080),
	"titanium": viewer.Hex(0xa0a0a0),
	"plastic":  viewer.Hex(0x4a90e2),
}

// MaterialColor returns the display color of a material. Names are
// matched exactly.
func MaterialColor(name string) color.RGBA {
	if c, ok := materialColors[name]; ok {
		return c
	}
	return FallbackColor
}
