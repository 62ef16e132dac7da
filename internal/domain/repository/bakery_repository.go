package repository

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/errors"

	"github.com/google/uuid"
)

// ErrBakeryNotFound is returned when a bakery is not found.
var ErrBakeryNotFound = errors.New("bakery not found")

// BakeryRepository defines the operations for bakery persistence.
type BakeryRepository interface {
	// FindByID retrieves a bakery by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bakery, error)

	// FindByOwner retrieves the bakery of a seller profile.
	// The oldest bakery wins if more than one exists.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Bakery, error)

	// Create persists a new bakery.
	Create(ctx context.Context, bakery *entity.Bakery) error

	// Update writes the editable fields of a bakery.
	Update(ctx context.Context, bakery *entity.Bakery) error
}
