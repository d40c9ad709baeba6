// Package onboard hosts the certificate onboarding web service: the
// onboarding page, the certificate download endpoints, and the static
// assets the page depends on.
package onboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/trustgate/onboard/internal/certfiles"
	"github.com/trustgate/onboard/internal/services/onboard/static"
)

const shutdownTimeout = 5 * time.Second

// NewHandler assembles the onboarding HTTP routes.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &handler{
		cfg:    cfg,
		store:  certfiles.Store{Dir: cfg.ConfDir, Basename: cfg.CAName},
		tracer: otel.Tracer("onboard"),
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.HandleFunc("/cert/pem", h.certHandler(certfiles.FormatPEM))
	mux.HandleFunc("/cert/p12", h.certHandler(certfiles.FormatP12))
	mux.HandleFunc("/cert/cer", h.certHandler(certfiles.FormatCER))
	mux.HandleFunc("/cert/magisk", h.handleMagisk)
	mux.HandleFunc("/", h.handleIndex)
	return mux, nil
}

// Server hosts the onboarding HTTP service.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server from the validated configuration.
func NewServer(cfg Config) (*Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
