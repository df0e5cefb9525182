package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"internhub/internal/platform/config"
	"internhub/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the net/http server in front of it
type Server struct {
	mux   *chi.Mux
	srv   *http.Server
	drain time.Duration
}

// NewServer reads API_* under cfg, callers usually pass root.Prefix("CORE_")
//
//	API_PORT              listen address, default :4000
//	API_READ_TIMEOUT      default 30s
//	API_WRITE_TIMEOUT     default 60s
//	API_IDLE_TIMEOUT      default 2m
//	API_SHUTDOWN_TIMEOUT  how long Run drains on cancel, default 10s
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	return &Server{
		mux:   mux,
		drain: cfg.MayDuration("API_SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &http.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("API_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("API_WRITE_TIMEOUT", time.Minute),
			IdleTimeout:       cfg.MayDuration("API_IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router is the root router modules mount on
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens until ctx is cancelled, then gives in flight requests the drain window
// a listen failure is returned as is, a clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	served := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		served <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-served:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("drain", s.drain).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return ignoreClosed(<-served)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
