package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/dotstyle/pkg/cache"
	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

const simple = "digraph G {\n  a -> b;\n}\n"

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Rewritten",
			in:   `<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`,
		},
		{
			name: "NoViewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "ZeroSize",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	var r Renderer
	svg, err := r.Render(context.Background(), []byte(simple), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}

func TestRenderLayoutDOT(t *testing.T) {
	var r Renderer
	out, err := r.Render(context.Background(), []byte(simple), Options{Format: FormatDOT})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var rd dot.Reader
	graphs, _, err := rd.Read(context.Background(), out)
	if err != nil {
		t.Fatalf("laid out DOT not readable: %v\n%s", err, out)
	}
	a, ok := graphs[0].Node("a")
	if !ok {
		t.Fatal("node a missing")
	}
	if _, ok := a.Overrides[visual.NodeXLocation]; !ok {
		t.Errorf("node a has no position after layout: %v", a.Overrides)
	}
}

func TestRenderUsesCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	keyer := cache.NewScopedKeyer(nil, "test:")
	key := keyer.RenderKey(cache.Hash([]byte(simple)), cache.RenderKeyOpts{
		Format: FormatPNG,
		Layout: DefaultLayout,
		Scale:  1,
	})
	if err := c.Set(ctx, key, []byte("cached"), 0); err != nil {
		t.Fatal(err)
	}

	// PNG needs rsvg-convert, so only a cache hit can succeed without it.
	r := Renderer{Cache: c, Keyer: keyer}
	out, err := r.Render(ctx, []byte(simple), Options{Format: FormatPNG})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != "cached" {
		t.Errorf("Render() = %q, want cached artifact", out)
	}
}

func TestRenderStoresInCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := Renderer{Cache: c}
	first, err := r.Render(ctx, []byte(simple), Options{Format: FormatSVG})
	if err != nil {
		t.Fatal(err)
	}
	key := cache.NewDefaultKeyer().RenderKey(cache.Hash([]byte(simple)), cache.RenderKeyOpts{
		Format: FormatSVG,
		Layout: DefaultLayout,
		Scale:  1,
	})
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit {
		t.Fatalf("artifact not cached: hit %v err %v", hit, err)
	}
	if !bytes.Equal(data, first) {
		t.Error("cached artifact differs from rendered output")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		code errors.Code
	}{
		{"UnknownFormat", simple, Options{Format: "gif"}, errors.ErrCodeInvalidFormat},
		{"UnknownLayout", simple, Options{Layout: "spiral"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Renderer
			_, err := r.Render(context.Background(), []byte(tt.src), tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("Render() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderGraph(t *testing.T) {
	g := visual.New("G")
	g.AddNode(visual.Node{ID: "two words"})
	var (
		r Renderer
		w dot.Writer
	)
	svg, report, err := r.RenderGraph(context.Background(), &w, g, Options{})
	if err != nil {
		t.Fatalf("RenderGraph() error: %v", err)
	}
	if report.Count(errors.ErrCodeIdentifierModified) != 1 {
		t.Errorf("warnings = %v", report.Warnings)
	}
	if !strings.Contains(string(svg), "two words") {
		t.Error("node label missing from SVG")
	}
}

func TestLayouts(t *testing.T) {
	got := Layouts()
	if len(got) != len(layouts) || got[0] != "circo" {
		t.Errorf("Layouts() = %v", got)
	}
}
