package resolve

import (
	"image/color"

	dotattrs "github.com/matzehuels/dotstyle/pkg/dot/attrs"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// FillSource records which attribute provided an element's fill.
type FillSource int

const (
	// FillNone means no attribute set the fill; the default applies.
	FillNone FillSource = iota
	// FillExplicit means fillcolor (or bgcolor) set the fill.
	FillExplicit
	// FillBorderFallback means color served as both border and fill.
	FillBorderFallback
)

func (s FillSource) String() string {
	switch s {
	case FillExplicit:
		return "explicit"
	case FillBorderFallback:
		return "border-fallback"
	default:
		return "none"
	}
}

// Paint is a parsed color attribute: a single color, or a color list when
// List has more than one entry.
type Paint struct {
	Color color.NRGBA
	List  []dotcolor.Weighted
}

// IsList reports whether p should be drawn as a gradient.
func (p Paint) IsList() bool { return len(p.List) > 1 }

// Colors is the outcome of the color precedence rule for one attribute
// list. Nil fields were not set.
type Colors struct {
	Fill   *Paint
	Border *Paint
	Font   *Paint
	Source FillSource
}

func fillAttribute(kind visual.Kind) string {
	switch kind {
	case visual.KindNetwork:
		return dotattrs.BgColor
	case visual.KindNode:
		return dotattrs.FillColor
	}
	return ""
}

// ResolveColors applies the fill, border and font color rules to attrs.
// Malformed colors are skipped and reported.
func (r *Resolver) ResolveColors(kind visual.Kind, attrs map[string]string) (Colors, []Issue) {
	var (
		c      Colors
		issues []Issue
	)
	scheme := r.scheme(attrs)
	read := func(name string) *Paint {
		raw, ok := attrs[name]
		if !ok {
			return nil
		}
		p, err := r.paint(raw, scheme)
		if err != nil {
			issues = append(issues, Issue{Attribute: name, Value: raw, Err: err})
			return nil
		}
		return &p
	}

	if name := fillAttribute(kind); name != "" {
		if p := read(name); p != nil {
			c.Fill, c.Source = p, FillExplicit
		}
	}
	if kind == visual.KindNetwork {
		return c, issues
	}
	if p := read(dotattrs.Color); p != nil {
		c.Border = p
		if kind == visual.KindNode && c.Source == FillNone {
			c.Fill, c.Source = p, FillBorderFallback
		}
	}
	c.Font = read(dotattrs.FontColor)
	return c, issues
}

func (r *Resolver) paint(raw, scheme string) (Paint, error) {
	if !dotcolor.IsList(raw) {
		c, err := dotcolor.ParseWith(r.lookup(), raw, scheme)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Color: c}, nil
	}
	list, err := dotcolor.ParseWeightedListWith(r.lookup(), raw, scheme)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Color: list[0].Color, List: list}, nil
}
