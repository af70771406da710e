package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnparseable is wrapped by every error returned for a color value that
// matches none of the accepted forms.
var ErrUnparseable = errors.New("unparseable color")

// Fallback is returned together with an error when a color cannot be
// parsed.
var Fallback = color.NRGBA{R: 0, G: 0, B: 255, A: 255}

var (
	rgbPattern  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	rgbaPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)
	hsbPattern  = regexp.MustCompile(`^([0-9]*\.?[0-9]+)[,\s]+([0-9]*\.?[0-9]+)[,\s]+([0-9]*\.?[0-9]+)$`)
)

// Parse converts a Graphviz color value using the [Default] lookup. An empty
// scheme selects x11.
func Parse(text, scheme string) (color.NRGBA, error) {
	return ParseWith(Default, text, scheme)
}

// ParseWith converts a Graphviz color value, resolving names through l.
func ParseWith(l Lookup, text, scheme string) (color.NRGBA, error) {
	s := strings.TrimSpace(text)
	switch {
	case rgbPattern.MatchString(s):
		return hexColor(s[1:], 255), nil
	case rgbaPattern.MatchString(s):
		a, _ := strconv.ParseUint(s[7:9], 16, 8)
		return hexColor(s[1:7], uint8(a)), nil
	}
	if m := hsbPattern.FindStringSubmatch(s); m != nil {
		if c, ok := hsb(m[1], m[2], m[3]); ok {
			return c, nil
		}
	}
	if c, ok := lookupName(l, s, scheme); ok {
		return c, nil
	}
	return Fallback, fmt.Errorf("%q: %w", text, ErrUnparseable)
}

func hexColor(digits string, alpha uint8) color.NRGBA {
	v, _ := strconv.ParseUint(digits, 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: alpha}
}

func hsb(hs, ss, vs string) (color.NRGBA, bool) {
	var vals [3]float64
	for i, s := range []string{hs, ss, vs} {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 || f > 1 {
			return color.NRGBA{}, false
		}
		vals[i] = f
	}
	// Hue 1 is a full turn and wraps to red.
	h := math.Mod(vals[0], 1) * 360
	r, g, b := colorful.Hsv(h, vals[1], vals[2]).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

// lookupName resolves "name", "/scheme/name" and "//name".
func lookupName(l Lookup, s, scheme string) (color.NRGBA, bool) {
	if s == "" {
		return color.NRGBA{}, false
	}
	if strings.HasPrefix(s, "/") {
		sc, name, ok := strings.Cut(s[1:], "/")
		if !ok {
			return color.NRGBA{}, false
		}
		if sc != "" {
			scheme = sc
		}
		s = name
	}
	if scheme == "" {
		scheme = X11
	}
	return l.Lookup(scheme, s)
}

// Format returns c as "#RRGGBBAA".
func Format(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// FormatAlpha returns c as "#RRGGBBAA" with its alpha channel replaced by
// alpha.
func FormatAlpha(c color.NRGBA, alpha uint8) string {
	c.A = alpha
	return Format(c)
}

// WithAlpha returns c with its alpha channel replaced. Out of range values
// are clamped to [0,255].
func WithAlpha(c color.NRGBA, alpha int) color.NRGBA {
	c.A = uint8(max(0, min(255, alpha)))
	return c
}
