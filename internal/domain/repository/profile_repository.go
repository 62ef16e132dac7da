// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when no profile matches the lookup.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileAlreadyExists is returned when the principal already has a profile.
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByPrincipalID retrieves the profile owned by an authenticated principal.
	FindByPrincipalID(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile. Returns ErrProfileAlreadyExists when the principal is taken.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes the editable contact fields of a profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
