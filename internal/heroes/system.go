package heroes

import (
	"context"

	"github.com/JaimeStill/hero-catalog/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for hero catalog operations.
type System interface {
	// Create validates and stores a hero with its image set.
	Create(ctx context.Context, cmd CreateCommand) (*Hero, error)

	// List returns one page of heroes, newest first. A non-nil page.Search
	// keeps only heroes whose nickname contains it, ignoring case.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Hero], error)

	// Find returns a hero with its images.
	Find(ctx context.Context, id uuid.UUID) (*Hero, error)

	// Update applies a partial update, replacing the image set when one is supplied.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Hero, error)

	// Delete removes a hero and its images.
	Delete(ctx context.Context, id uuid.UUID) error
}
