package main

import (
	"net/http"

	"github.com/JaimeStill/hero-catalog/internal/api"
	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/infrastructure"
	"github.com/JaimeStill/hero-catalog/pkg/handlers"
	"github.com/JaimeStill/hero-catalog/pkg/lifecycle"
	"github.com/JaimeStill/hero-catalog/pkg/module"
)

type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", handleHealth)
	router.HandleNative("GET /readyz", handleReady(infra.Lifecycle))

	return router
}

// healthStatus is the body of the health and readiness endpoints.
type healthStatus struct {
	Status string `json:"status"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}

// handleReady answers 503 until every startup hook has returned and again
// once shutdown begins.
func handleReady(ready lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "starting"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, healthStatus{Status: "ready"})
	}
}
