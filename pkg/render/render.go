package render

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/dotstyle/pkg/cache"
	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/observability"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// Options configures a render.
type Options struct {
	// Format is one of FormatSVG, FormatPNG, FormatPDF or FormatDOT.
	Format string
	// Layout names the Graphviz engine. Empty means DefaultLayout.
	Layout string
	// Scale multiplies the PNG resolution. Values <= 0 mean 1.
	Scale float64
}

// Renderer renders DOT text through Graphviz and caches the artifacts.
//
// The zero value renders without caching.
type Renderer struct {
	Cache cache.Cache
	Keyer cache.Keyer
	// TTL bounds the lifetime of cached artifacts. Zero keeps them forever.
	TTL time.Duration
}

// Render renders DOT source according to opts.
func (r *Renderer) Render(ctx context.Context, src []byte, opts Options) (out []byte, err error) {
	opts = normalize(opts)
	switch opts.Format {
	case FormatSVG, FormatPNG, FormatPDF, FormatDOT:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "cannot render %s", opts.Format)
	}

	start := time.Now()
	hooks := observability.Codec()
	hooks.OnRenderStart(ctx, opts.Format)
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	}()

	c, key := r.Cache, ""
	if c != nil {
		keyer := r.Keyer
		if keyer == nil {
			keyer = cache.NewDefaultKeyer()
		}
		key = keyer.RenderKey(cache.Hash(src), cache.RenderKeyOpts{
			Format: opts.Format,
			Layout: opts.Layout,
			Scale:  opts.Scale,
		})
		if data, hit, err := c.Get(ctx, key); err == nil && hit {
			return data, nil
		}
	}

	out, err = render(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	if c != nil {
		// A failed cache write does not fail the render.
		_ = c.Set(ctx, key, out, r.TTL)
	}
	return out, nil
}

// RenderGraph writes g as DOT with w and renders the result. The writer's
// report is returned even when rendering fails.
func (r *Renderer) RenderGraph(ctx context.Context, w *dot.Writer, g *visual.Graph, opts Options) ([]byte, *dot.Report, error) {
	var buf bytes.Buffer
	report, err := w.Write(ctx, &buf, g)
	if err != nil {
		return nil, report, err
	}
	out, err := r.Render(ctx, buf.Bytes(), opts)
	return out, report, err
}

func render(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatSVG, FormatDOT:
		return RenderGraphviz(ctx, src, opts.Layout, opts.Format)
	}
	svg, err := RenderGraphviz(ctx, src, opts.Layout, FormatSVG)
	if err != nil {
		return nil, err
	}
	if opts.Format == FormatPDF {
		return ToPDF(ctx, svg)
	}
	return ToPNG(ctx, svg, opts.Scale)
}

func normalize(opts Options) Options {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if opts.Layout == "" {
		opts.Layout = DefaultLayout
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return opts
}
