package desktop

import (
	"image/color"

	"github.com/plus3/blockfall/piece"
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{40, 40, 52, 255}
	gridColor       = color.RGBA{52, 52, 66, 255}
)

var kindColors = [piece.J + 1]color.RGBA{
	piece.T: {217, 186, 255, 255},
	piece.Z: {255, 179, 186, 255},
	piece.S: {186, 255, 201, 255},
	piece.O: {255, 255, 186, 255},
	piece.I: {179, 229, 252, 255},
	piece.L: {255, 223, 186, 255},
	piece.J: {186, 225, 255, 255},
}

// KindColor returns the fill colour for kind.
func KindColor(kind piece.Kind) color.RGBA {
	if !kind.Valid() {
		return color.RGBA{255, 255, 255, 255}
	}
	return kindColors[kind]
}

// GhostColor is KindColor at reduced opacity.
func GhostColor(kind piece.Kind) color.RGBA {
	c := KindColor(kind)
	const alpha = 96
	return color.RGBA{
		R: uint8(uint16(c.R) * alpha / 255),
		G: uint8(uint16(c.G) * alpha / 255),
		B: uint8(uint16(c.B) * alpha / 255),
		A: alpha,
	}
}
