// Package heroes manages the superhero catalog: hero records, their ordered
// image sets, and the HTTP surface that exposes them.
package heroes

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/JaimeStill/hero-catalog/pkg/optional"
	"github.com/google/uuid"
)

// Hero is a catalog record together with its current image set.
type Hero struct {
	ID                uuid.UUID `json:"id"`
	Nickname          string    `json:"nickname"`
	RealName          *string   `json:"realName"`
	OriginDescription *string   `json:"originDescription"`
	Superpowers       *string   `json:"superpowers"`
	CatchPhrase       *string   `json:"catchPhrase"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Images            []Image   `json:"images"`
}

// Image is a URL owned by exactly one hero. Position preserves the order the
// URLs were supplied in.
type Image struct {
	ID       uuid.UUID `json:"id"`
	HeroID   uuid.UUID `json:"heroId"`
	URL      string    `json:"url"`
	Position int       `json:"-"`
}

// CreateCommand contains the data needed to create a hero.
type CreateCommand struct {
	Nickname          string   `json:"nickname" validate:"notblank"`
	RealName          *string  `json:"realName"`
	OriginDescription *string  `json:"originDescription"`
	Superpowers       *string  `json:"superpowers"`
	CatchPhrase       *string  `json:"catchPhrase"`
	Images            []string `json:"images"`
}

// UpdateCommand is a partial update. Absent keys leave the stored value alone,
// a null text field clears it, and a present images key (even null or [])
// replaces the whole image set.
type UpdateCommand struct {
	Nickname          optional.Value[string]   `json:"nickname"`
	RealName          optional.Value[*string]  `json:"realName"`
	OriginDescription optional.Value[*string]  `json:"originDescription"`
	Superpowers       optional.Value[*string]  `json:"superpowers"`
	CatchPhrase       optional.Value[*string]  `json:"catchPhrase"`
	Images            optional.Value[[]string] `json:"images"`
}

// HeroFields are the column values written when a hero is inserted.
type HeroFields struct {
	Nickname          string
	RealName          *string
	OriginDescription *string
	Superpowers       *string
	CatchPhrase       *string
}

// FieldPatch holds the column changes of an update. Only set fields are written.
type FieldPatch struct {
	Nickname          optional.Value[string]
	RealName          optional.Value[*string]
	OriginDescription optional.Value[*string]
	Superpowers       optional.Value[*string]
	CatchPhrase       optional.Value[*string]
}

func (c CreateCommand) fields() HeroFields {
	return HeroFields{
		Nickname:          strings.TrimSpace(c.Nickname),
		RealName:          c.RealName,
		OriginDescription: c.OriginDescription,
		Superpowers:       c.Superpowers,
		CatchPhrase:       c.CatchPhrase,
	}
}

func (c UpdateCommand) patch() FieldPatch {
	p := FieldPatch{
		Nickname:          c.Nickname,
		RealName:          c.RealName,
		OriginDescription: c.OriginDescription,
		Superpowers:       c.Superpowers,
		CatchPhrase:       c.CatchPhrase,
	}
	if p.Nickname.Set {
		p.Nickname.Value = strings.TrimSpace(p.Nickname.Value)
	}
	return p
}

// CleanURLs trims every candidate URL and drops the ones left empty.
// Relative order is kept. The result is never nil.
func CleanURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	return cleaned
}

func sortImages(images []Image) {
	slices.SortStableFunc(images, func(a, b Image) int {
		return cmp.Compare(a.Position, b.Position)
	})
}
