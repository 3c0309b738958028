package heroes

import (
	"context"
	"database/sql"

	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/google/uuid"
)

// Queries is the set of store operations the service composes. Every method
// runs against the connection or transaction the Queries value was bound to.
type Queries interface {
	Count(ctx context.Context, search *string) (int, error)
	FindPage(ctx context.Context, page pagination.PageRequest) ([]Hero, error)
	FindByID(ctx context.Context, id uuid.UUID) (Hero, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, fields HeroFields) (Hero, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch FieldPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteImages(ctx context.Context, heroID uuid.UUID) error
	InsertImages(ctx context.Context, heroID uuid.UUID, urls []string) ([]Image, error)
	ImagesFor(ctx context.Context, heroIDs ...uuid.UUID) (map[uuid.UUID][]Image, error)
}

// Gateway is the hero store. WithinTx runs fn against a transaction that
// commits when fn returns nil and rolls back otherwise.
type Gateway interface {
	Queries
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(q Queries) error) error
}
