package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/heroes"
	"github.com/JaimeStill/hero-catalog/internal/infrastructure"
	"github.com/JaimeStill/hero-catalog/pkg/logging"
	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/google/uuid"
)

type stubHeroes struct {
	heroes.System
	created int
}

func (s *stubHeroes) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[heroes.Hero], error) {
	result := pagination.NewPageResult[heroes.Hero](nil, 0, page.Page, page.PageSize)
	return &result, nil
}

func (s *stubHeroes) Create(ctx context.Context, cmd heroes.CreateCommand) (*heroes.Hero, error) {
	s.created++
	return &heroes.Hero{ID: uuid.New(), Nickname: cmd.Nickname, Images: []heroes.Image{}}, nil
}

func testModule(t *testing.T, mutate func(*config.Config)) (http.Handler, *stubHeroes) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.URL = "postgres://localhost/heroes"
	cfg.Logging.Level = logging.Level("error")
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	stub := &stubHeroes{}
	runtime := &Runtime{
		Infrastructure: &infrastructure.Infrastructure{Logger: logging.New(&cfg.Logging)},
		Pagination:     cfg.API.Pagination,
	}

	m, err := newModule(cfg, runtime, &Domain{Heroes: stub})
	if err != nil {
		t.Fatalf("newModule() error = %v", err)
	}
	return http.HandlerFunc(m.Serve), stub
}

func TestModule_Routes(t *testing.T) {
	h, stub := testModule(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/heroes?page=1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/heroes status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/heroes", strings.NewReader(`{"nickname":"Batman"}`)))
	if w.Code != http.StatusCreated || stub.created != 1 {
		t.Errorf("POST /api/heroes status = %d created = %d, want 201 and 1", w.Code, stub.created)
	}
}

func TestModule_MaxBodySize(t *testing.T) {
	h, stub := testModule(t, func(cfg *config.Config) {
		cfg.API.MaxBodySize = "64B"
	})

	body := `{"nickname":"` + strings.Repeat("x", 128) + `"}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/heroes", strings.NewReader(body)))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
	if stub.created != 0 {
		t.Error("oversized body should not reach the service")
	}
}

func TestModule_CORS(t *testing.T) {
	h, _ := testModule(t, func(cfg *config.Config) {
		cfg.API.CORS.Enabled = true
		cfg.API.CORS.Origins = []string{"http://localhost:5173"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/heroes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", w.Code)
	}
}
