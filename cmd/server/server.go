package main

import (
	"time"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/infrastructure"
)

// Server ties the catalog API, its database, and the HTTP listener to one
// lifecycle coordinator.
type Server struct {
	infra           *infrastructure.Infrastructure
	modules         *Modules
	http            *httpServer
	shutdownTimeout time.Duration
}

// NewServer wires the catalog from cfg without opening any connection.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	timeout := cfg.ShutdownTimeoutDuration()
	infra.Logger.Info(
		"hero catalog configured",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"shutdown_timeout", timeout,
	)

	return &Server{
		infra:           infra,
		modules:         modules,
		http:            newHTTPServer(&cfg.Server, router, infra.Logger, timeout),
		shutdownTimeout: timeout,
	}, nil
}

// Start pings the database, migrates the schema, and binds the listener.
// /readyz reports ready once the remaining startup hooks return.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("hero catalog ready", "addr", s.http.http.Addr)
	}()
	return nil
}

// Shutdown drains HTTP, then closes the pool. Both stages share the
// configured shutdown timeout.
func (s *Server) Shutdown() error {
	s.infra.Logger.Info("hero catalog stopping")
	return s.infra.Lifecycle.Shutdown(s.shutdownTimeout)
}
