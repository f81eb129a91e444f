package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridkit/internal/server"
	"github.com/gridkit/gridkit/pkg/gridio"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server receives an interrupt.
const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	tile string // tile shape as "HEIGHTxWIDTH"
	addr string // listen address
}

// serveCommand creates the serve command for exposing grid box and tile
// geometry over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{tile: "256x256", addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve <descriptor>",
		Short: "Serve grid box and tile geometry as a JSON HTTP API",
		Long: `Serve grid box and tile geometry as a JSON HTTP API.

Routes:
  GET /box               descriptor, resolution, and world extent
  GET /tiles             tile grid summary
  GET /tiles/{row}/{col} one tile's descriptor and extent

The server runs until interrupted (Ctrl+C) and then shuts down gracefully.

Examples:
  gridkit serve scene.json
  gridkit serve scene.json --tile 512x512 --addr :9090`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.tile, "tile", opts.tile, "tile shape as HEIGHTxWIDTH")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func runServe(ctx context.Context, opts *serveOpts, path string) error {
	logger := loggerFromContext(ctx)

	th, tw, err := parseTileShape(opts.tile)
	if err != nil {
		return err
	}

	box, err := gridio.Import(path)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: server.New(box, th, tw, logger).Handler(),
	}

	printInfo("Serving %s on %s", path, opts.addr)
	printDetail("GET /box")
	printDetail("GET /tiles")
	printDetail("GET /tiles/{row}/{col}")

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
