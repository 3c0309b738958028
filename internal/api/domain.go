package api

import "github.com/JaimeStill/hero-catalog/internal/heroes"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Heroes heroes.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Heroes: heroes.New(
			heroes.NewGateway(runtime.Database.Connection()),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
