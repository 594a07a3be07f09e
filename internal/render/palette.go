package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the gridline colour and the two cell fills.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette returns light grey gridlines, white dead cells and pale
// green live cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		Dead:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Alive: color.RGBA{R: 0xAF, G: 0xE1, B: 0xAF, A: 0xFF},
	}
}

// Fill selects the fill colour for a cell value: zero is dead, anything
// else is alive.
func (p Palette) Fill(cell uint8) color.RGBA {
	if cell != 0 {
		return p.Alive
	}
	return p.Dead
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("render: bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad colour %q: %w", s, err)
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}

// ParsePalette builds a palette from hex strings. Empty strings keep the
// default entry.
func ParsePalette(grid, dead, alive string) (Palette, error) {
	p := DefaultPalette()
	for _, e := range []struct {
		src string
		dst *color.RGBA
	}{{grid, &p.Grid}, {dead, &p.Dead}, {alive, &p.Alive}} {
		if e.src == "" {
			continue
		}
		c, err := ParseHex(e.src)
		if err != nil {
			return Palette{}, err
		}
		*e.dst = c
	}
	return p, nil
}
