package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bowlsplit/internal/cli/config"
	"github.com/leapstack-labs/bowlsplit/internal/cli/output"
)

// CommandContext bundles what the root pre-run prepared for a command.
type CommandContext struct {
	Config   *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext reads the config, renderer and logger from cmd's context.
// Commands run without the root pre-run (as in unit tests) get defaults
// writing to cmd's own streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)

	r := config.GetRenderer(ctx)
	if r == nil {
		r = output.NewRenderer(cmd.OutOrStdout(), cfg.OutputMode())
	}

	return &CommandContext{
		Config:   cfg,
		Renderer: r,
		Logger:   config.GetLogger(ctx),
	}
}
