package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/weburl/pkg/mcp"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/version"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes the URL parser as tools that AI agents can discover and
invoke:
  - weburl_parse: Parse a URL, optionally against a base
  - weburl_resolve: Resolve references against a base URL
  - weburl_idna: Convert a domain to or from Punycode`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			obsCfg := cfg.Observability(observability.ModeMCP, version.Version)
			obsCfg.LogJSON = true
			obsCfg.LogWriter = cmd.ErrOrStderr()

			if debug {
				obsCfg.LogLevel = slog.LevelDebug
			}

			providers, err := observability.Init(obsCfg)
			if err != nil {
				return err
			}

			defer func() {
				if shutdownErr := providers.Shutdown(context.Background()); shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			red, err := observability.NewREDMetrics(providers.Meter)
			if err != nil {
				return err
			}

			opts, err := cfg.ParserOptions()
			if err != nil {
				return err
			}

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger:        providers.Logger,
				Metrics:       red,
				Tracer:        providers.Tracer,
				Version:       version.Version,
				ParserOptions: opts,
			})

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}
