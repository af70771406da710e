// Package config loads dotstyle settings from TOML or YAML files.
//
// A config file has one table per concern:
//
//	[read]
//	color_scheme = "x11"
//	workers = 4
//
//	[write]
//	label_location = "external"
//	pad = "2"
//
//	[render]
//	format = "svg"
//	layout = "dot"
//	cache = true
//
// The format is chosen by file extension (.toml, .yaml or .yml). Missing
// keys keep their [Default] values. Command-line flags override the file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dotstyle/pkg/dot"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/dot/resolve"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/render"
)

// Config holds every setting of the codec and the CLI.
type Config struct {
	Read   Read   `toml:"read" yaml:"read"`
	Write  Write  `toml:"write" yaml:"write"`
	Render Render `toml:"render" yaml:"render"`
}

// Read configures DOT import.
type Read struct {
	// ColorScheme resolves color names without an explicit colorscheme.
	ColorScheme string `toml:"color_scheme" yaml:"color_scheme"`
	// Workers is the number of elements resolved in parallel.
	Workers int `toml:"workers" yaml:"workers"`
}

// Write configures DOT export.
type Write struct {
	LabelLocation string `toml:"label_location" yaml:"label_location"`
	Splines       string `toml:"splines" yaml:"splines"`
	OutputOrder   string `toml:"output_order" yaml:"output_order"`
	ESep          string `toml:"esep" yaml:"esep"`
	Pad           string `toml:"pad" yaml:"pad"`
}

// Render configures image output.
type Render struct {
	Format   string  `toml:"format" yaml:"format"`
	Layout   string  `toml:"layout" yaml:"layout"`
	Scale    float64 `toml:"scale" yaml:"scale"`
	Cache    bool    `toml:"cache" yaml:"cache"`
	CacheDir string  `toml:"cache_dir" yaml:"cache_dir"`
	// CacheTTL is a Go duration string such as "24h". Empty never expires.
	CacheTTL string `toml:"cache_ttl" yaml:"cache_ttl"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Read: Read{
			ColorScheme: dotcolor.X11,
			Workers:     1,
		},
		Write: Write{
			LabelLocation: string(dot.LabelInternal),
			Splines:       dot.DefaultSplines,
			OutputOrder:   dot.DefaultOutputOrder,
			ESep:          dot.DefaultESep,
			Pad:           dot.DefaultPad,
		},
		Render: Render{
			Format: render.FormatSVG,
			Layout: render.DefaultLayout,
			Scale:  1,
			Cache:  true,
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "config %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext over the defaults and
// validates the result.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if err := errors.ValidateColorScheme(c.Read.ColorScheme, dotcolor.Default.Names()); err != nil {
		return err
	}
	if err := errors.ValidateWorkers(c.Read.Workers); err != nil {
		return err
	}
	if err := errors.ValidateLabelLocation(c.Write.LabelLocation); err != nil {
		return err
	}
	if err := errors.ValidateFormat(c.Render.Format); err != nil {
		return err
	}
	if strings.EqualFold(c.Render.Format, "json") {
		return errors.New(errors.ErrCodeInvalidConfig, "json is not a render format")
	}
	if err := render.ValidateLayout(c.Render.Layout); err != nil {
		return err
	}
	if c.Render.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must not be negative, got %g", c.Render.Scale)
	}
	if c.Render.CacheDir != "" {
		if err := errors.ValidatePath(c.Render.CacheDir); err != nil {
			return err
		}
	}
	if _, err := c.Render.TTL(); err != nil {
		return err
	}
	return nil
}

// Reader returns a DOT reader configured by c.
func (c Config) Reader() *dot.Reader {
	return &dot.Reader{
		Resolver: resolve.Resolver{Scheme: strings.ToLower(c.Read.ColorScheme)},
		Workers:  c.Read.Workers,
	}
}

// Writer returns a DOT writer configured by c.
func (c Config) Writer() *dot.Writer {
	return &dot.Writer{
		LabelLocation: dot.LabelLocation(c.Write.LabelLocation),
		Splines:       c.Write.Splines,
		OutputOrder:   c.Write.OutputOrder,
		ESep:          c.Write.ESep,
		Pad:           c.Write.Pad,
	}
}

// Options returns the render options configured by r.
func (r Render) Options() render.Options {
	return render.Options{
		Format: strings.ToLower(r.Format),
		Layout: r.Layout,
		Scale:  r.Scale,
	}
}

// TTL parses CacheTTL.
func (r Render) TTL() (time.Duration, error) {
	if r.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.CacheTTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid cache_ttl %q", r.CacheTTL)
	}
	return d, nil
}
