package query_test

import (
	"testing"

	"github.com/JaimeStill/hero-catalog/pkg/query"
)

func TestProjectionMap(t *testing.T) {
	pm := query.NewProjectionMap("public", "images", "i").
		Project("id", "ID").
		Project("hero_id", "HeroID").
		Project("url", "URL")

	if got := pm.Table(); got != "public.images i" {
		t.Errorf("Table() = %q, want %q", got, "public.images i")
	}
	if got := pm.Columns(); got != "i.id, i.hero_id, i.url" {
		t.Errorf("Columns() = %q, want %q", got, "i.id, i.hero_id, i.url")
	}
	if got := pm.Column("HeroID"); got != "i.hero_id" {
		t.Errorf("Column(HeroID) = %q, want %q", got, "i.hero_id")
	}
	if got := pm.Column("unknown"); got != "unknown" {
		t.Errorf("Column(unknown) = %q, want %q", got, "unknown")
	}
}
