package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotstyle/pkg/errors"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	// FormatDOT is DOT annotated with the computed layout (pos, width,
	// height, bb). Importing it yields node positions and edge bends.
	FormatDOT = "dot"
)

// DefaultLayout is the Graphviz engine used when none is configured.
const DefaultLayout = "dot"

var layouts = map[string]graphviz.Layout{
	"circo":     graphviz.CIRCO,
	"dot":       graphviz.DOT,
	"fdp":       graphviz.FDP,
	"neato":     graphviz.NEATO,
	"osage":     graphviz.OSAGE,
	"patchwork": graphviz.PATCHWORK,
	"sfdp":      graphviz.SFDP,
	"twopi":     graphviz.TWOPI,
}

// Layouts returns the sorted names of the supported layout engines.
func Layouts() []string {
	return slices.Sorted(maps.Keys(layouts))
}

// ValidateLayout checks a layout engine name. The empty string selects
// [DefaultLayout] and is accepted.
func ValidateLayout(name string) error {
	if _, ok := layouts[name]; !ok && name != "" {
		return errors.New(errors.ErrCodeInvalidInput, "unknown layout engine %q (known: %s)", name, strings.Join(Layouts(), ", "))
	}
	return nil
}

// RenderGraphviz lays out DOT source with the named engine and renders it in
// format, which must be [FormatSVG] or [FormatDOT]. An empty layout selects
// [DefaultLayout].
func RenderGraphviz(ctx context.Context, dot []byte, layout, format string) ([]byte, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	engine := layouts[layout]
	var gvFormat graphviz.Format
	switch format {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatDOT:
		gvFormat = graphviz.Format(FormatDOT)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graphviz cannot render %s directly", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(engine)

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDOT, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	if format == FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so that the image scales with
// its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
