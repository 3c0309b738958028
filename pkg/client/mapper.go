// Package client is a Go client for the hero catalog API. It translates
// between the wire shape served by the API and the display shape used by
// catalog front ends.
package client

import (
	"time"

	"github.com/JaimeStill/hero-catalog/pkg/optional"
)

// RawImage is an image as served by the API.
type RawImage struct {
	ID     string `json:"id"`
	HeroID string `json:"heroId,omitempty"`
	URL    string `json:"url"`
}

// RawHero is a hero as served by the API.
type RawHero struct {
	ID                string     `json:"id"`
	Nickname          string     `json:"nickname"`
	RealName          *string    `json:"realName"`
	OriginDescription *string    `json:"originDescription"`
	Superpowers       *string    `json:"superpowers"`
	CatchPhrase       *string    `json:"catchPhrase"`
	Images            []RawImage `json:"images"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Superhero is the display shape. Missing text fields are empty strings and
// images are a flat list of URLs.
type Superhero struct {
	ID                string    `json:"id,omitempty"`
	Nickname          string    `json:"nickname"`
	RealName          string    `json:"real_name"`
	OriginDescription string    `json:"origin_description"`
	Superpowers       string    `json:"superpowers"`
	CatchPhrase       string    `json:"catch_phrase"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
	UpdatedAt         time.Time `json:"updated_at,omitzero"`
}

// HeroPayload is the create request body.
type HeroPayload struct {
	Nickname          string   `json:"nickname"`
	RealName          string   `json:"realName,omitempty"`
	OriginDescription string   `json:"originDescription,omitempty"`
	Superpowers       string   `json:"superpowers,omitempty"`
	CatchPhrase       string   `json:"catchPhrase,omitempty"`
	Images            []string `json:"images,omitempty"`
}

// SuperheroPatch is a partial change in display terms. Unset fields are left
// untouched by the server.
type SuperheroPatch struct {
	Nickname          optional.Value[string]
	RealName          optional.Value[string]
	OriginDescription optional.Value[string]
	Superpowers       optional.Value[string]
	CatchPhrase       optional.Value[string]
	Images            optional.Value[[]string]
}

// PatchPayload is the update request body. Absent fields are omitted from the
// encoded JSON.
type PatchPayload struct {
	Nickname          optional.Value[string]   `json:"nickname,omitzero"`
	RealName          optional.Value[string]   `json:"realName,omitzero"`
	OriginDescription optional.Value[string]   `json:"originDescription,omitzero"`
	Superpowers       optional.Value[string]   `json:"superpowers,omitzero"`
	CatchPhrase       optional.Value[string]   `json:"catchPhrase,omitzero"`
	Images            optional.Value[[]string] `json:"images,omitzero"`
}

// MapHero converts a wire hero to its display shape.
func MapHero(raw RawHero) Superhero {
	images := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		images = append(images, img.URL)
	}

	return Superhero{
		ID:                raw.ID,
		Nickname:          raw.Nickname,
		RealName:          deref(raw.RealName),
		OriginDescription: deref(raw.OriginDescription),
		Superpowers:       deref(raw.Superpowers),
		CatchPhrase:       deref(raw.CatchPhrase),
		Images:            images,
		CreatedAt:         raw.CreatedAt,
		UpdatedAt:         raw.UpdatedAt,
	}
}

// MapHeroes applies MapHero to each element.
func MapHeroes(raw []RawHero) []Superhero {
	heroes := make([]Superhero, len(raw))
	for i, r := range raw {
		heroes[i] = MapHero(r)
	}
	return heroes
}

// BuildPayload converts a display hero to a create request body.
func BuildPayload(s Superhero) HeroPayload {
	return HeroPayload{
		Nickname:          s.Nickname,
		RealName:          s.RealName,
		OriginDescription: s.OriginDescription,
		Superpowers:       s.Superpowers,
		CatchPhrase:       s.CatchPhrase,
		Images:            s.Images,
	}
}

// BuildPatch converts a display patch to an update request body.
func BuildPatch(p SuperheroPatch) PatchPayload {
	return PatchPayload(p)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
