package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type ScenicHttpServer struct {
	addr      string
	router    *Router
	muxRouter *mux.Router
	logger    *zap.Logger

	registerOnce sync.Once
}

func NewScenicHttpServer(addr string, router *Router, muxRouter *mux.Router, logger *zap.Logger) *ScenicHttpServer {
	return &ScenicHttpServer{
		addr:      addr,
		router:    router,
		muxRouter: muxRouter,
		logger:    logger,
	}
}

// Handler returns the fully wrapped handler. Routes are registered on the
// first call only.
func (s *ScenicHttpServer) Handler() http.Handler {
	s.registerOnce.Do(s.router.RegisterRoutes)
	return Middleware(s.muxRouter, s.logger)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *ScenicHttpServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *ScenicHttpServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exiting")
	return nil
}
