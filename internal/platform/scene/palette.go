package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// GlyphWidth is the advance of the fixed-width HUD font in pixels.
const GlyphWidth = 7

// Palette caches entity hex colors. Unparseable values render white.
// Not safe for concurrent use; each window owns one.
type Palette struct {
	cache map[string]color.Color
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]color.Color)}
}

// Hex returns the color for a "#rrggbb" string.
func (p *Palette) Hex(hex string) color.Color {
	if c, ok := p.cache[hex]; ok {
		return c
	}
	var out color.Color = colornames.White
	if c, err := colorful.Hex(hex); err == nil {
		r, g, b := c.RGB255()
		out = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	p.cache[hex] = out
	return out
}

// Fade returns c with its alpha scaled by a in [0, 1].
func Fade(c color.Color, a float64) color.Color {
	if a <= 0 {
		return color.NRGBA{}
	}
	if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * a)
	return n
}

var termColors = map[core.Color]color.Color{
	core.ColorDefault:       colornames.Whitesmoke,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Forestgreen,
	core.ColorYellow:        colornames.Goldenrod,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Darkmagenta,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Lightgray,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Darkorange,
	core.ColorGray:          colornames.Gray,
	core.ColorDim:           colornames.Dimgray,
	core.ColorGold:          colornames.Gold,
	core.ColorViolet:        colornames.Mediumpurple,
}

// TermColor maps a terminal palette slot to a window color.
func TermColor(c core.Color) color.Color {
	if col, ok := termColors[c]; ok {
		return col
	}
	return colornames.White
}
