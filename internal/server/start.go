package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Start runs the HTTP server and blocks until an interrupt or terminate
// signal arrives, then shuts everything down gracefully.
func (s *Server) Start() {
	addr := ":" + s.Cfg.GetAppPort()
	go func() {
		if err := s.E.Start(addr); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	waitForShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.stop(ctx)

	if err := s.E.Shutdown(ctx); err != nil {
		s.E.Logger.Fatal(err)
	}
}

// stop tears down the modules and background services. The bridge closes
// before the hub context is canceled: an in-flight subscriber can still hand
// its rendered fragment to the running hub instead of blocking on a stopped
// one.
func (s *Server) stop(ctx context.Context) {
	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}

	if err := s.Bridge.Close(); err != nil {
		slog.Error("Failed to close pubsub bridge", "error", err)
	}
	s.cancel()
}
