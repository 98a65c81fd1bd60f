package health

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server is a minimal liveness endpoint for external health checks.
// It shares no state with the bot core.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer creates a liveness server bound to addr
func NewServer(addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Handle)

	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Handle answers every request with 200 OK
func Handle(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Start runs the server until it fails or is shut down
func (s *Server) Start() {
	s.logger.Info("Health server listening", zap.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Health server stopped", zap.Error(err))
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
