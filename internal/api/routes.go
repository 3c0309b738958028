package api

import (
	"net/http"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/heroes"
	"github.com/JaimeStill/hero-catalog/pkg/openapi"
	"github.com/JaimeStill/hero-catalog/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	heroesHandler := heroes.NewHandler(domain.Heroes, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		heroesHandler.Routes(),
	)
}
