package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/io"
)

const sample = `digraph G {bgcolor="#FF0000FF"; a[label="X",shape=diamond]; b; a->b[color="#00FF00FF"]}`

type result struct {
	stdout string
	status string
	logs   string
}

// run executes the root command with args. The cache lives in the
// XDG_CACHE_HOME set by the caller, or in a fresh directory.
func run(t *testing.T, args ...string) (result, error) {
	t.Helper()
	if os.Getenv("XDG_CACHE_HOME") == "" {
		t.Setenv("XDG_CACHE_HOME", t.TempDir())
	}

	var stdout, status, logs bytes.Buffer
	old := statusOut
	statusOut = &status
	defer func() { statusOut = old }()

	c := New(&logs, LogDebug)
	c.Stdout = &stdout
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), status: status.String(), logs: logs.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportExport(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	snapshot := filepath.Join(t.TempDir(), "graph.json")

	if _, err := run(t, "import", in, "-o", snapshot); err != nil {
		t.Fatalf("import: %v", err)
	}
	graphs, err := io.ImportJSON(snapshot)
	if err != nil {
		t.Fatalf("snapshot not readable: %v", err)
	}
	if len(graphs) != 1 || graphs[0].NodeCount() != 2 {
		t.Fatalf("snapshot = %d graphs", len(graphs))
	}

	res, err := run(t, "export", snapshot)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{
		`bgcolor="#FF0000FF";`,
		`a [label=X, shape=diamond];`,
		`a -> b [color="#00FF00FF"];`,
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("export output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestImportCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name       string
		src        string
		secondHits bool
	}{
		{"Clean", sample, true},
		{"Warnings", `digraph { a [color="not a color"]; }`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeFile(t, "graph.dot", tt.src)
			first, err := run(t, "import", in)
			if err != nil {
				t.Fatalf("first import: %v", err)
			}
			second, err := run(t, "import", in)
			if err != nil {
				t.Fatalf("second import: %v", err)
			}
			if first.stdout != second.stdout {
				t.Error("cached import differs from fresh import")
			}
			if got := strings.Contains(second.status, iconCached); got != tt.secondHits {
				t.Errorf("second import cached = %v, want %v\n%s", got, tt.secondHits, second.status)
			}
		})
	}
}

func TestImportNoCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	in := writeFile(t, "graph.dot", sample)
	for i := 0; i < 2; i++ {
		res, err := run(t, "import", "--no-cache", in)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(res.status, iconCached) {
			t.Fatalf("run %d hit the cache with --no-cache", i)
		}
	}
}

func TestImportWarnings(t *testing.T) {
	in := writeFile(t, "graph.dot", `digraph { a [color="not a color"]; }`)
	res, err := run(t, "import", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.status, "1 attribute value could not be converted and was skipped") {
		t.Errorf("summary missing:\n%s", res.status)
	}
	if !strings.Contains(res.logs, string(errors.ErrCodeMalformedValue)) {
		t.Errorf("warning not logged at debug level:\n%s", res.logs)
	}
}

func TestRoundtripStable(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	first, err := run(t, "roundtrip", in)
	if err != nil {
		t.Fatal(err)
	}
	again := writeFile(t, "again.dot", first.stdout)
	second, err := run(t, "roundtrip", again)
	if err != nil {
		t.Fatal(err)
	}
	if first.stdout != second.stdout {
		t.Errorf("roundtrip not stable:\nfirst:\n%s\nsecond:\n%s", first.stdout, second.stdout)
	}
}

func TestExportLabelLocation(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	res, err := run(t, "roundtrip", "--label-location", "external", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.stdout, "xlabel=X") {
		t.Errorf("external label missing:\n%s", res.stdout)
	}
}

func TestInspect(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	res, err := run(t, "inspect", in)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"G", "NODE_SHAPE", "NETWORK_BACKGROUND_PAINT", "#FF0000FF"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRender(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	if _, err := run(t, "render", in, "-f", "svg,dot"); err != nil {
		t.Fatalf("render: %v", err)
	}
	base := strings.TrimSuffix(in, ".dot")

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("not an SVG: %.80s", svg)
	}

	laidOut, err := os.ReadFile(base + ".layout.dot")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(laidOut, []byte("pos=")) {
		t.Errorf("laid out DOT has no positions:\n%s", laidOut)
	}
	if src, _ := os.ReadFile(in); string(src) != sample {
		t.Error("render overwrote its input")
	}
}

func TestMetricsFile(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	metrics := filepath.Join(t.TempDir(), "dotstyle.prom")
	if _, err := run(t, "--metrics-file", metrics, "import", in); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`dotstyle_operations_total{operation="import"} 1`)) {
		t.Errorf("import not counted:\n%s", data)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "dotstyle.toml", "[write]\nlabel_location = \"external\"\n")
	in := writeFile(t, "graph.dot", sample)

	res, err := run(t, "--config", cfg, "roundtrip", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.stdout, "xlabel=X") {
		t.Errorf("config not applied:\n%s", res.stdout)
	}

	res, err = run(t, "--config", cfg, "roundtrip", "--label-location", "internal", in)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(res.stdout, "xlabel") {
		t.Errorf("flag did not override config:\n%s", res.stdout)
	}
}

func TestCommandErrors(t *testing.T) {
	in := writeFile(t, "graph.dot", sample)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"MissingInput", []string{"import", filepath.Join(dir, "missing.dot")}, errors.ErrCodeFileNotFound},
		{"MissingConfig", []string{"--config", filepath.Join(dir, "missing.toml"), "import", in}, errors.ErrCodeFileNotFound},
		{"ColorScheme", []string{"import", "--color-scheme", "brewer", in}, errors.ErrCodeInvalidInput},
		{"Workers", []string{"import", "--workers", "-1", in}, errors.ErrCodeInvalidConfig},
		{"LabelLocation", []string{"roundtrip", "--label-location", "above", in}, errors.ErrCodeInvalidInput},
		{"RenderFormat", []string{"render", "-f", "gif", in}, errors.ErrCodeInvalidFormat},
		{"RenderJSON", []string{"render", "-f", "json", in}, errors.ErrCodeInvalidFormat},
		{"RenderLayout", []string{"render", "--layout", "spiral", in}, errors.ErrCodeInvalidInput},
		{"BadDOT", []string{"import", writeFile(t, "bad.dot", "digraph {")}, errors.ErrCodeInvalidDOT},
		{"BadJSON", []string{"export", writeFile(t, "bad.json", "{")}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		i       int
		graphs  int
		format  string
		formats int
		want    string
	}{
		{"Explicit", "g.dot", "out.png", 0, 1, "png", 1, "out.png"},
		{"FromInput", "dir/g.dot", "", 0, 1, "svg", 1, "dir/g.svg"},
		{"ExplicitBase", "g.dot", "out/x.svg", 0, 1, "pdf", 2, "out/x.pdf"},
		{"SeveralGraphs", "g.json", "", 1, 3, "svg", 1, "g-2.svg"},
		{"KeepsInput", "g.dot", "", 0, 1, "dot", 1, "g.layout.dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.i, tt.graphs, tt.format, tt.formats)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "sub/b", "sub/deeper/c"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := clearDir(dir)
	if err != nil || n != 3 {
		t.Fatalf("clearDir() = %d, %v", n, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("left %d entries behind", len(entries))
	}

	if n, err := clearDir(filepath.Join(dir, "missing")); n != 0 || err != nil {
		t.Errorf("clearDir(missing) = %d, %v", n, err)
	}
}

func TestImportExample(t *testing.T) {
	in := filepath.Join("..", "..", "examples", "styled.dot")
	snapshot := filepath.Join(t.TempDir(), "styled.json")
	if _, err := run(t, "import", in, "-o", snapshot); err != nil {
		t.Fatal(err)
	}
	graphs, err := io.ImportJSON(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	g := graphs[0]
	if g.Name != "pipeline" || g.NodeCount() != 6 || g.EdgeCount() != 6 {
		t.Errorf("graph %q has %d nodes and %d edges", g.Name, g.NodeCount(), g.EdgeCount())
	}
}
