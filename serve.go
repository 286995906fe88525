package cms

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within Server.ShutdownTimeout.
func (m *Module) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      m.Handler(),
		ReadTimeout:  m.cfg.Server.ReadTimeout,
		WriteTimeout: m.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		m.logger.Info("http.listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if timeout := m.cfg.Server.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, timeout)
		defer cancel()
	}
	m.logger.Info("http.shutdown")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on Server.Addr and calls Serve.
func (m *Module) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", m.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return m.Serve(ctx, ln)
}
