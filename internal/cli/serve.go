package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpark/pkg/cache"
	"github.com/matzehuels/gridpark/pkg/observability"
	"github.com/matzehuels/gridpark/pkg/server"
)

// serveCommand creates the serve command that exposes evaluation over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		noMemo bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout evaluation over HTTP",
		Long: `Serve layout evaluation over HTTP.

Endpoints:
  GET /healthz            liveness
  GET /layouts/{code}     evaluation of a flat code, e.g. /layouts/GTP_BGG_TTP
  GET /count?size=&tiles=&unique=true
                          size of a layout space, optionally with its
                          symmetry-class count (memoized)
  GET /metrics            Prometheus metrics`,
		Example: `  gridpark serve --addr :9090`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noMemo)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noMemo, "no-memo", false, "recompute unique counts on every request")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noMemo bool) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hooks := observability.NewPrometheusHooks(reg)
	observability.SetPipelineHooks(hooks)
	observability.SetExportHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	var memo cache.Cache = cache.NewMemoryCache()
	if noMemo {
		memo = cache.NewNullCache()
	}
	defer memo.Close()

	srv := server.New(server.Config{
		Addr:     addr,
		Logger:   c.Logger,
		Gatherer: reg,
		Cache:    memo,
	})
	return srv.ListenAndServe(ctx)
}
