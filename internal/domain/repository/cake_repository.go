package repository

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCakeNotFound is returned when a cake is not found.
	ErrCakeNotFound = errors.New("cake not found")
	// ErrCakeInUse is returned when a cake still referenced by orders is deleted.
	ErrCakeInUse = errors.New("cake is referenced by orders")
)

// CakeRepository defines the operations for cake persistence.
type CakeRepository interface {
	// FindByID retrieves a cake regardless of its availability.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error)

	// FindAvailableListing retrieves an available cake joined with its bakery.
	// Missing and unavailable cakes both return ErrCakeNotFound.
	FindAvailableListing(ctx context.Context, id uuid.UUID) (*entity.CakeListing, error)

	// ListAvailable returns available cakes matching the filter, newest first.
	ListAvailable(ctx context.Context, filter entity.CakeFilter) ([]*entity.CakeListing, error)

	// ListByBakery returns every cake of a bakery, newest first.
	ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Cake, error)

	Create(ctx context.Context, cake *entity.Cake) error

	// Update writes every editable field of a cake.
	Update(ctx context.Context, cake *entity.Cake) error

	// Delete removes a cake. Returns ErrCakeInUse when orders still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetAvailability writes only the available flag.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}
