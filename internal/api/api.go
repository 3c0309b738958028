// Package api assembles the hero catalog REST module: domain systems, routes,
// the OpenAPI document, and the API middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/infrastructure"
	"github.com/JaimeStill/hero-catalog/pkg/middleware"
	"github.com/JaimeStill/hero-catalog/pkg/module"
	"github.com/JaimeStill/hero-catalog/pkg/openapi"
)

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	return newModule(cfg, runtime, domain)
}

func newModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.AddServer(cfg.Domain)
	cfg.API.OpenAPI.Apply(spec)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET "+cfg.API.OpenAPI.Path, openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.RateLimit(&cfg.API.RateLimit))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return m, nil
}
