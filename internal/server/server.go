/*
Package server implements the application's HTTP transport: the JSON
generate-plan API and the server-rendered pages that collect the profile
and present the resulting plan.
*/
package server

import (
	"net/http"
	"time"

	"ai-fitness-planner/internal/config"
	"ai-fitness-planner/internal/planner"

	"github.com/rs/zerolog"
)

// Server holds the dependencies of the HTTP service.
type Server struct {
	cfg     *config.Config
	planner *planner.Planner
	store   *planner.PlanStore
	log     zerolog.Logger
}

// NewServer wires the planner and plan store into the HTTP service.
func NewServer(cfg *config.Config, p *planner.Planner, store *planner.PlanStore, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, planner: p, store: store, log: log}
}

// HTTPServer returns a configured *http.Server with production-ready
// network timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
