package resolve

import (
	"fmt"
	"strings"

	dotattrs "github.com/matzehuels/dotstyle/pkg/dot/attrs"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// position stores a node position or edge bend points parsed from pos.
func position(kind visual.Kind, vals visual.Values, raw string) error {
	switch kind {
	case visual.KindNode:
		pt, err := ParsePoint(raw)
		if err != nil {
			return err
		}
		vals[visual.NodeXLocation] = pt.X
		vals[visual.NodeYLocation] = pt.Y
	case visual.KindEdge:
		pts, err := ParseBend(raw)
		if err != nil {
			return err
		}
		vals[visual.EdgeBend] = pts
	}
	return nil
}

// ParsePoint parses a DOT point "x,y", "x,y,z" or "x,y!" into visual
// coordinates, negating Y.
func ParsePoint(raw string) (visual.Point, error) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "!")
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return visual.Point{}, fmt.Errorf("point %q: %w", raw, dotattrs.ErrMalformed)
	}
	x, err := dotattrs.ParseFloat(parts[0])
	if err != nil {
		return visual.Point{}, err
	}
	y, err := dotattrs.ParseFloat(parts[1])
	if err != nil {
		return visual.Point{}, err
	}
	return visual.Point{X: x, Y: -y}, nil
}

// ParseBend parses an edge pos spline into visual points. The "s,x,y" and
// "e,x,y" endpoint markers are skipped.
func ParseBend(raw string) ([]visual.Point, error) {
	var pts []visual.Point
	for _, f := range strings.Fields(strings.ReplaceAll(raw, ";", " ")) {
		if strings.HasPrefix(f, "s,") || strings.HasPrefix(f, "e,") {
			continue
		}
		pt, err := ParsePoint(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	if pts == nil {
		pts = []visual.Point{}
	}
	return pts, nil
}

// FormatPoint writes p as a DOT point, negating Y.
func FormatPoint(p visual.Point) string {
	return dotattrs.FormatFloat(p.X) + "," + dotattrs.FormatFloat(-p.Y)
}

// FormatBend writes bend points as an edge pos value.
func FormatBend(pts []visual.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = FormatPoint(p)
	}
	return strings.Join(parts, " ")
}
