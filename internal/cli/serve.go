package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(o *rootOptions) *cobra.Command {
	var (
		addr    string
		maxRuns int
		fade    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve step-wise runs over HTTP",
		Long: `Serve exposes the builtin scenarios over a JSON API. Clients create a run,
step it, and fetch frames, paths, or DOT/SVG renderings of its state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			srv := &http.Server{
				ReadHeaderTimeout: 2 * time.Second,
				Handler: server.New(
					server.WithLogger(logger),
					server.WithMaxRuns(maxRuns),
					server.WithFadeSteps(fade),
				),
			}

			return serve(ctx, srv, ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().IntVar(&maxRuns, "max-runs", 1000, "maximum live runs (0 means unlimited)")
	cmd.Flags().IntVar(&fade, "fade", 2, "steps a cost annotation stays highlighted")

	return cmd
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	logger := loggerFromContext(ctx)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	logger.Info("Listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")

	return nil
}
