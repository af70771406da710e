// Package cli implements the dotstyle command-line interface.
//
// This package provides commands for importing Graphviz DOT files into the
// visual graph model, exporting them back to DOT, and rendering them with
// Graphviz. The CLI is built using cobra and logs via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - import: Read DOT and write a JSON snapshot of the visual graphs
//   - export: Read a JSON snapshot and write DOT
//   - roundtrip: Read DOT and write it back through the visual model
//   - render: Generate SVG, PNG, PDF or laid-out DOT
//   - inspect: Print the style defaults and overrides of a file
//   - cache: Manage the import and render cache
//
// # Configuration
//
// Settings come from the file given with --config (TOML or YAML), then
// command-line flags. See [config.Config].
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// lists every individual import or export warning. Loggers are passed
// through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/buildinfo"
	"github.com/matzehuels/dotstyle/pkg/cache"
	"github.com/matzehuels/dotstyle/pkg/config"
	"github.com/matzehuels/dotstyle/pkg/observability/prom"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "dotstyle"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Stdout receives DOT or JSON output when no output file is given.
	Stdout io.Writer

	configPath  string
	metricsPath string
	noCache     bool

	cfg     config.Config
	metrics *prom.Metrics
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdout: os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dotstyle converts between Graphviz DOT and styled visual graphs",
		Long: `dotstyle imports Graphviz DOT files into a visual graph model with style
defaults and per-element overrides, exports the model back to DOT, and
renders it with Graphviz.`,
		Version:            buildinfo.Version,
		SilenceUsage:       true,
		PersistentPreRunE:  c.before,
		PersistentPostRunE: c.after,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	flags.StringVar(&c.metricsPath, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the import and render cache")

	root.AddCommand(c.importCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.roundtripCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache opens the configured cache. Caching silently degrades to a
// NullCache when no cache directory can be determined.
func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache || !c.cfg.Render.Cache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// keyer scopes cache keys by build version.
func (c *CLI) keyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Render.CacheDir != "" {
		return c.cfg.Render.CacheDir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/dotstyle/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
