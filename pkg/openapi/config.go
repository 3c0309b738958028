package openapi

import (
	"fmt"
	"os"
	"strings"
)

const defaultPath = "/openapi.json"

// Config describes the generated document and where it is served.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Path        string   `toml:"path"`
	Servers     []string `toml:"servers"`
}

type ConfigEnv struct {
	Title       string
	Description string
	Path        string
	Servers     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies overlay values. A non-empty Servers list replaces the base list.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

// Apply copies the description and server list onto spec.
func (c *Config) Apply(spec *Spec) {
	spec.SetDescription(c.Description)
	for _, url := range c.Servers {
		spec.AddServer(url)
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Hero Catalog API"
	}
	if c.Description == "" {
		c.Description = "Catalog of superhero records with paginated nickname search and ordered image sets."
	}
	if c.Path == "" {
		c.Path = defaultPath
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := getenv(env.Description); v != "" {
		c.Description = v
	}
	if v := getenv(env.Path); v != "" {
		c.Path = v
	}
	if v := getenv(env.Servers); v != "" {
		c.Servers = c.Servers[:0]
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") || strings.ContainsAny(c.Path, " {}") {
		return fmt.Errorf("openapi path %q must be an absolute route path", c.Path)
	}
	return nil
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
