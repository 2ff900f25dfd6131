package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Sumatoshi-tech/weburl/internal/server"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/version"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON API",
		Long: `Serve the URL parser over HTTP until SIGINT or SIGTERM:

  GET  /api/parse?url=U&base=B
  POST /api/parse   {"url": U, "base": B}
  GET  /healthz, /readyz
  GET  /metrics     Prometheus exposition

Results are cached in an LRU keyed by url and base.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			reader, metricsHandler, err := observability.NewPrometheusReader()
			if err != nil {
				return err
			}

			obsCfg := cfg.Observability(observability.ModeServe, version.Version)
			obsCfg.MetricReaders = []sdkmetric.Reader{reader}
			obsCfg.LogWriter = cmd.ErrOrStderr()

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

			srv, err := server.New(server.Deps{
				Config:         cfg,
				Logger:         providers.Logger,
				Tracer:         providers.Tracer,
				Metrics:        red,
				MetricsHandler: metricsHandler,
				ParserOptions:  opts,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")

	return cmd
}
