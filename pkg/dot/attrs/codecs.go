package attrs

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

var (
	stringCodec = codec{
		decode: func(raw string) (any, error) { return raw, nil },
		encode: func(v any) (string, bool) {
			s, ok := v.(string)
			return s, ok
		},
	}

	doubleCodec = codec{
		decode: func(raw string) (any, error) {
			f, err := ParseFloat(raw)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		encode: func(v any) (string, bool) {
			f, ok := v.(float64)
			return FormatFloat(f), ok
		},
	}

	inchCodec = codec{
		decode: func(raw string) (any, error) {
			f, err := ParseFloat(raw)
			if err != nil {
				return nil, err
			}
			return f * PointsPerInch, nil
		},
		encode: func(v any) (string, bool) {
			f, ok := v.(float64)
			return FormatFloat(f / PointsPerInch), ok
		},
	}

	fontSizeCodec = codec{
		decode: func(raw string) (any, error) {
			f, err := ParseFloat(raw)
			if err != nil {
				return nil, err
			}
			return int(math.Round(f)), nil
		},
		encode: func(v any) (string, bool) {
			n, ok := v.(int)
			return fmt.Sprint(n), ok
		},
	}

	shapeCodec = enumCodec(
		map[string]visual.NodeShape{
			"triangle":      visual.ShapeTriangle,
			"diamond":       visual.ShapeDiamond,
			"ellipse":       visual.ShapeEllipse,
			"oval":          visual.ShapeEllipse,
			"hexagon":       visual.ShapeHexagon,
			"octagon":       visual.ShapeOctagon,
			"parallelogram": visual.ShapeParallelogram,
			"rectangle":     visual.ShapeRectangle,
			"rect":          visual.ShapeRectangle,
			"box":           visual.ShapeRectangle,
		},
		map[visual.NodeShape]string{
			visual.ShapeTriangle:       "triangle",
			visual.ShapeDiamond:        "diamond",
			visual.ShapeEllipse:        "ellipse",
			visual.ShapeHexagon:        "hexagon",
			visual.ShapeOctagon:        "octagon",
			visual.ShapeParallelogram:  "parallelogram",
			visual.ShapeRectangle:      "rectangle",
			visual.ShapeRoundRectangle: "rectangle",
		},
	)

	arrowCodec = enumCodec(
		map[string]visual.ArrowShape{
			"vee":      visual.ArrowArrow,
			"dot":      visual.ArrowCircle,
			"normal":   visual.ArrowDelta,
			"diamond":  visual.ArrowDiamond,
			"ornormal": visual.ArrowHalfBottom,
			"olnormal": visual.ArrowHalfTop,
			"none":     visual.ArrowNone,
			"tee":      visual.ArrowT,
		},
		map[visual.ArrowShape]string{
			visual.ArrowArrow:      "vee",
			visual.ArrowCircle:     "dot",
			visual.ArrowDelta:      "normal",
			visual.ArrowDiamond:    "diamond",
			visual.ArrowHalfBottom: "ornormal",
			visual.ArrowHalfTop:    "olnormal",
			visual.ArrowNone:       "none",
			visual.ArrowT:          "tee",
		},
	)
)

func enumCodec[E comparable](in map[string]E, out map[E]string) codec {
	return codec{
		decode: func(raw string) (any, error) {
			v, ok := in[strings.ToLower(strings.TrimSpace(raw))]
			if !ok {
				return nil, fmt.Errorf("unsupported value %q: %w", raw, ErrMalformed)
			}
			return v, nil
		},
		encode: func(v any) (string, bool) {
			e, ok := v.(E)
			if !ok {
				return "", false
			}
			s, ok := out[e]
			return s, ok
		},
	}
}
