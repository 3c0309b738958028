package heroes

import (
	"github.com/JaimeStill/hero-catalog/pkg/query"
	"github.com/JaimeStill/hero-catalog/pkg/repository"
)

var heroProjection = query.
	NewProjectionMap("public", "heroes", "h").
	Project("id", "ID").
	Project("nickname", "Nickname").
	Project("real_name", "RealName").
	Project("origin_description", "OriginDescription").
	Project("superpowers", "Superpowers").
	Project("catch_phrase", "CatchPhrase").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var imageProjection = query.
	NewProjectionMap("public", "images", "i").
	Project("id", "ID").
	Project("hero_id", "HeroID").
	Project("url", "URL").
	Project("position", "Position")

// Newest first; seq breaks created_at ties in favor of the later insert.
var defaultSort = []query.SortField{
	{Field: "CreatedAt", Descending: true},
	{Field: "h.seq", Descending: true},
}

var imageSort = []query.SortField{
	{Field: "HeroID"},
	{Field: "Position"},
}

func scanHero(s repository.Scanner) (Hero, error) {
	var h Hero
	err := s.Scan(
		&h.ID, &h.Nickname, &h.RealName, &h.OriginDescription,
		&h.Superpowers, &h.CatchPhrase, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func scanImage(s repository.Scanner) (Image, error) {
	var img Image
	err := s.Scan(&img.ID, &img.HeroID, &img.URL, &img.Position)
	return img, err
}
