package worker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer runs an http.Server until ctx is cancelled, then shuts it down
// gracefully within ShutdownTimeout.
type HTTPServer struct {
	Server          *http.Server
	ShutdownTimeout time.Duration
}

// Name returns the worker identifier.
func (h *HTTPServer) Name() string { return "http_server" }

// Run serves until ctx is done or the listener fails.
func (h *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("http server listening", "addr", h.Server.Addr)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
	defer cancel()
	if err := h.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("http server stopped")
	return nil
}
