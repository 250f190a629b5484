package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Paxai/rebot/config"
	"github.com/Paxai/rebot/gateway"
)

// Server exposes the HTTP surface of the service: the authenticated /check
// and /whitelist routes plus an unauthenticated liveness probe.
type Server struct {
	logger *log.Logger
	gw     gateway.Gateway
	cfg    config.Config

	httpServer *http.Server
}

// New assembles the server. The gateway is an interface so tests can run the
// router against a stub.
func New(cfg config.Config, gw gateway.Gateway, logger *log.Logger) *Server {
	return &Server{logger: logger, gw: gw, cfg: cfg}
}

// Router builds the chi router with the middleware stack and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)
		r.Post("/check", s.handleCheck)
		r.Post("/whitelist", s.handleWhitelist)
	})

	return r
}

// Start binds the listen address and serves until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("error encoding JSON response: %v", err)
	}
}
