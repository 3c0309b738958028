// Package routes declares route groups that register on a mux and describe
// themselves in an OpenAPI document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/hero-catalog/pkg/openapi"
)

// Route binds a method and pattern to a handler with optional OpenAPI metadata.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec records the group's schemas and operations in spec. Paths are
// prefixed with basePath. Routes without metadata are left out of the
// document, and operations without tags inherit the group's tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g *Group) addToSpec(parentPrefix string, spec *openapi.Spec) {
	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for i := range g.Children {
		g.Children[i].addToSpec(prefix, spec)
	}
}

func (g *Group) register(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for i := range g.Children {
		g.Children[i].register(mux, prefix)
	}
}

// Register mounts every group on mux relative to the module root and adds
// the groups to spec under basePath, where the module is served.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for i := range groups {
		groups[i].AddToSpec(basePath, spec)
		groups[i].register(mux, "")
	}
}
