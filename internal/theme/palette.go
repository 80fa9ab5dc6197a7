package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the semantic colour slots for one resolved theme.
//
// Surfaces should depend on these slots rather than on literal colours.
type Palette struct {
	Background string
	Surface    string
	Foreground string
	Muted      string
	Primary    string
	Accent     string
	Border     string
	Danger     string
	Success    string
}

// Swatch is a named palette slot.
type Swatch struct {
	Name string
	Hex  string
}

var palettes = map[Resolved]Palette{
	ResolvedLight: {
		Background: "#FFFFFF",
		Surface:    "#F4F6FA",
		Foreground: "#1B2434",
		Muted:      "#5D6B82",
		Primary:    "#1F6FEB",
		Accent:     "#F59E0B",
		Border:     "#D5DCE6",
		Danger:     "#C62828",
		Success:    "#2E7D32",
	},
	ResolvedDark: {
		Background: "#0E1420",
		Surface:    "#172133",
		Foreground: "#E6ECF5",
		Muted:      "#93A1B8",
		Primary:    "#5C9DFF",
		Accent:     "#FBBF24",
		Border:     "#2B3950",
		Danger:     "#EF6B6B",
		Success:    "#5CC98A",
	},
}

// PaletteFor returns the palette of r. Unknown values get the light palette.
func PaletteFor(r Resolved) Palette {
	if p, ok := palettes[r]; ok {
		return p
	}
	return palettes[ResolvedLight]
}

// Swatches lists the palette slots in display order.
func (p Palette) Swatches() []Swatch {
	return []Swatch{
		{Name: "Background", Hex: p.Background},
		{Name: "Surface", Hex: p.Surface},
		{Name: "Foreground", Hex: p.Foreground},
		{Name: "Muted", Hex: p.Muted},
		{Name: "Primary", Hex: p.Primary},
		{Name: "Accent", Hex: p.Accent},
		{Name: "Border", Hex: p.Border},
		{Name: "Danger", Hex: p.Danger},
		{Name: "Success", Hex: p.Success},
	}
}

// ParseHex converts "#RRGGBB" (or "RRGGBB") into an opaque colour.
func ParseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// MustParseHex is ParseHex for the built-in palettes.
func MustParseHex(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
