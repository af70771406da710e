package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/config"
	"github.com/matzehuels/dotstyle/pkg/observability"
	"github.com/matzehuels/dotstyle/pkg/observability/prom"
)

// before runs ahead of every command: it loads the config file, installs
// the metrics hooks and attaches the logger to the command context.
func (c *CLI) before(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))

	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.Logger.Debug("loaded config", "path", c.configPath)
	}

	if c.metricsPath != "" {
		c.metrics = prom.New()
		observability.SetCodecHooks(c.metrics)
		observability.SetCacheHooks(c.metrics)
	}
	return nil
}

// after writes the metrics textfile once the command has finished.
func (c *CLI) after(_ *cobra.Command, _ []string) error {
	if c.metrics == nil {
		return nil
	}
	defer observability.Reset()
	if err := c.metrics.WriteTextfile(c.metricsPath); err != nil {
		return err
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsPath)
	return nil
}
