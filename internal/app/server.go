package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apexridge/roofline/internal/api/handlers"
	"github.com/apexridge/roofline/internal/config"
	"github.com/apexridge/roofline/internal/core/assistant"
	"github.com/apexridge/roofline/internal/logger"
	"github.com/apexridge/roofline/internal/services"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, asst *assistant.Assistant, leads *services.LeadService) *Server {
	log := logger.Get()

	chatHandler := handlers.NewChatHandler(asst, log)
	leadHandler := handlers.NewLeadHandler(leads, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// Landing page and assets from the web directory
	fileServer := http.FileServer(http.Dir("./web"))
	r.Handle("/*", fileServer)

	r.Post("/chat", chatHandler.Chat)
	r.Post("/submit_lead", leadHandler.SubmitLead)

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	l := logger.Get()
	l.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	l := logger.Get()
	l.Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
