package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/hero-catalog/pkg/module"
)

// echoPath writes the path the handler received.
var echoPath = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, r.URL.Path)
})

func newTestRouter() *module.Router {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "healthy")
	})
	r.Mount(module.New("/api", echoPath))
	return r
}

func TestRouter_Dispatch(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "native", path: "/healthz", wantStatus: 200, wantBody: "healthy"},
		{name: "native trailing slash", path: "/healthz/", wantStatus: 200, wantBody: "healthy"},
		{name: "module strips prefix", path: "/api/heroes", wantStatus: 200, wantBody: "/heroes"},
		{name: "module nested", path: "/api/heroes/42", wantStatus: 200, wantBody: "/heroes/42"},
		{name: "module trailing slash", path: "/api/heroes/", wantStatus: 200, wantBody: "/heroes"},
		{name: "module root", path: "/api", wantStatus: 200, wantBody: "/"},
		{name: "prefix is a whole segment", path: "/apiary", wantStatus: 404},
		{name: "unknown", path: "/missing", wantStatus: 404},
	}

	r := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestModule_MiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	m := module.New("/api", echoPath)
	m.Use(tag("outer"))
	m.Use(tag("inner"))

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest(http.MethodGet, "/api/heroes", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
	if rec.Body.String() != "/heroes" {
		t.Errorf("body = %q, want /heroes", rec.Body.String())
	}
}

func TestNew_InvalidPrefixPanics(t *testing.T) {
	for _, prefix := range []string{"", "api", "/", "/api/v1"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, echoPath)
		})
	}
}
