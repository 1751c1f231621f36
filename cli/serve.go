package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jakenesler/mailschema/internal"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/tools"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := metrics.New()
			if err != nil {
				return err
			}
			store := a.store(ctx)
			srv := tools.NewServer(a.cfg, a.catalog, store, a.validator(m), m)

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			if a.cfg.MetricsAddr != "" {
				g.Go(func() error {
					return m.Serve(ctx, a.cfg.MetricsAddr)
				})
			}

			g.Go(func() error {
				// The metrics server stops with the stdio session.
				defer cancel()

				stdio := server.NewStdioServer(srv)
				stdio.SetErrorLogger(zap.NewStdLog(internal.Logger().Desugar()))

				internal.Logf("starting %s %s MCP server (stdio), %d documents",
					a.cfg.Server.Name, a.cfg.Server.Version, len(store.Names()))
				err := stdio.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})

			return g.Wait()
		},
	}
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9464")
	if err := a.v.BindPFlag("metrics-addr", cmd.Flags().Lookup("metrics-addr")); err != nil {
		panic(err)
	}
	return cmd
}
