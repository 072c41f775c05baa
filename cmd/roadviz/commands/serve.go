package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/charts"
	"github.com/ufabox/InfoViz-25W/internal/server"
)

const (
	serveCmdUse      = "serve"
	serveCmdShort    = "Serve the dashboards over HTTP"
	serveListenFlag  = "listen"
	serveListenUsage = "listen address (overrides server.listen)"
	shutdownTimeout  = 10 * time.Second
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	var (
		cf     commonFlags
		listen string
	)

	cmd := &cobra.Command{
		Use:   serveCmdUse,
		Short: serveCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(&cf, listen)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&listen, serveListenFlag, "l", "", serveListenUsage)

	return cmd
}

func runServe(cf *commonFlags, listen string) error {
	logger := newLogger()

	cfg, store, st, err := cf.setup(logger)
	if err != nil {
		return err
	}

	if listen == "" {
		listen = cfg.Server.Listen
	}

	dash := charts.New(store, st,
		charts.WithTheme(themeFromConfig(cfg)),
		charts.WithCellSize(cfg.Dashboard.GridCellSize),
		charts.WithTopN(cfg.Dashboard.TopN),
	)

	srv := server.New(store, st, dash, logger,
		server.WithDebounce(time.Duration(cfg.Dashboard.DebounceMS)*time.Millisecond))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Start(listen)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
