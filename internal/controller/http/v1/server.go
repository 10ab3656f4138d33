package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/pdf_compressor/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// NewServer serves the history API only when compressions is not nil.
func NewServer(cfg config.HTTP, uploads *UploadHandler, compressions *CompressionsHandler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(uploads, compressions),
		},
	}
}

func NewRouter(uploads *UploadHandler, compressions *CompressionsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)
	r.Post("/upload", uploads.Upload)

	if compressions != nil {
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/compressions", compressions.GetCompressions)
			r.Get("/compressions/stats", compressions.GetStats)
		})
	}

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
