package color

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// Scheme names understood by [Default].
const (
	X11 = "x11"
	SVG = "svg"
)

// Lookup resolves a color name within a named color scheme.
type Lookup interface {
	Lookup(scheme, name string) (color.NRGBA, bool)
}

// Schemes is a read-only [Lookup] backed by in-memory tables. Names are
// matched case-insensitively with spaces removed.
type Schemes map[string]map[string]color.NRGBA

// Lookup implements [Lookup].
func (s Schemes) Lookup(scheme, name string) (color.NRGBA, bool) {
	table, ok := s[strings.ToLower(scheme)]
	if !ok {
		return color.NRGBA{}, false
	}
	c, ok := table[normalize(name)]
	return c, ok
}

// Names returns the sorted scheme names.
func (s Schemes) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether scheme is known.
func (s Schemes) Has(scheme string) bool {
	_, ok := s[strings.ToLower(scheme)]
	return ok
}

// Default holds the x11 and svg schemes.
var Default = Schemes{
	SVG: svgTable(),
	X11: x11Table(),
}

// transparent is Graphviz's "transparent" color.
var transparent = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFE, A: 0x00}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}

func svgTable() map[string]color.NRGBA {
	t := make(map[string]color.NRGBA, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		t[name] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	t["transparent"] = transparent
	return t
}

func x11Table() map[string]color.NRGBA {
	t := svgTable()
	for name, c := range map[string]color.NRGBA{
		"gray":   {R: 0xBE, G: 0xBE, B: 0xBE, A: 255},
		"grey":   {R: 0xBE, G: 0xBE, B: 0xBE, A: 255},
		"green":  {R: 0x00, G: 0xFF, B: 0x00, A: 255},
		"maroon": {R: 0xB0, G: 0x30, B: 0x60, A: 255},
		"purple": {R: 0xA0, G: 0x20, B: 0xF0, A: 255},
	} {
		t[name] = c
	}
	for i := 0; i <= 100; i++ {
		v := uint8(math.Round(float64(i) * 2.55))
		c := color.NRGBA{R: v, G: v, B: v, A: 255}
		t[fmt.Sprintf("gray%d", i)] = c
		t[fmt.Sprintf("grey%d", i)] = c
	}
	return t
}
