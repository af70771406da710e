// Package gradient converts between DOT gradient fills (a weighted color
// list, the style "radial" token and gradientangle) and visual gradients.
//
// Linear gradients keep the angle in degrees. Radial gradients store their
// center in unit coordinates with Y growing downward:
//
//	angle 0:  (0.5, 0.5)
//	angle θ:  (0.5 + 0.5·cos θ, 0.5 − 0.5·sin θ)
//
// [Angle] inverts the mapping so a gradient survives a round trip.
package gradient

import (
	"math"

	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/dot/style"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

var center = visual.Point{X: 0.5, Y: 0.5}

// Build creates a gradient from a parsed color list. Weights are taken as
// given; [dotcolor.ParseWeightedList] has already inferred missing ones.
func Build(list []dotcolor.Weighted, tokens style.Tokens, angle float64) visual.Gradient {
	g := visual.Gradient{Stops: make([]visual.Stop, len(list))}
	for i, w := range list {
		g.Stops[i] = visual.Stop{Color: w.Color, Weight: w.Weight}
	}
	if !tokens.Radial {
		g.Kind = visual.LinearGradient
		g.Angle = angle
		return g
	}
	g.Kind = visual.RadialGradient
	g.Center = Center(angle)
	return g
}

// Center returns the radial gradient center for angle degrees.
func Center(angle float64) visual.Point {
	if angle == 0 {
		return center
	}
	rad := angle * math.Pi / 180
	return visual.Point{
		X: 0.5 + 0.5*math.Cos(rad),
		Y: 0.5 - 0.5*math.Sin(rad),
	}
}

// Angle returns the gradientangle that reproduces g.
func Angle(g visual.Gradient) float64 {
	if g.Kind == visual.LinearGradient {
		return g.Angle
	}
	dx, dy := g.Center.X-center.X, center.Y-g.Center.Y
	if math.Abs(dx) < 1e-12 && math.Abs(dy) < 1e-12 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	// Snap values such as 89.99999999999999 produced by the trigonometry.
	if r := math.Round(deg); math.Abs(deg-r) < 1e-9 {
		deg = r
	}
	return deg
}

// Format returns the DOT color list, gradientangle and radial flag that
// describe g.
func Format(g visual.Gradient) (list string, angle float64, radial bool) {
	ws := make([]dotcolor.Weighted, len(g.Stops))
	for i, s := range g.Stops {
		ws[i] = dotcolor.Weighted{Color: s.Color, Weight: s.Weight}
	}
	return dotcolor.FormatWeightedList(ws), Angle(g), g.Kind == visual.RadialGradient
}
