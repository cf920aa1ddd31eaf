package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibseq/internal/logging"
)

// shutdownGrace bounds how long Serve waits for in-flight scrapes on
// shutdown.
const shutdownGrace = 2 * time.Second

// Serve runs an HTTP server exposing m on /metrics at addr until ctx is
// canceled. It blocks until the server has fully shut down.
//
// Parameters:
//   - ctx: Cancels the server.
//   - addr: The listen address (e.g. "localhost:9090").
//   - m: The metrics to expose.
//   - logger: Destination for lifecycle messages.
//
// Returns:
//   - error: Any listen or shutdown failure; nil on clean shutdown.
func Serve(ctx context.Context, addr string, m *Metrics, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("metrics endpoint listening", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("metrics endpoint stopped", err)
		return err
	}
	logger.Info("metrics endpoint stopped")
	return nil
}
