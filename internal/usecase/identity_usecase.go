// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionState is delivered to identity observers after every session change.
// PrincipalID is nil when the session ended. Err carries a failed profile resolution.
type SessionState struct {
	PrincipalID *uuid.UUID
	Profile     *entity.Profile
	Err         error
}

// SessionObserver receives session states. It must not block.
type SessionObserver func(state SessionState)

// UpdateProfileInput holds the optional contact fields a profile owner may change.
type UpdateProfileInput struct {
	DisplayName *string
	Phone       *string
	Address     *string
}

// IdentityUsecase maps authenticated principals to marketplace profiles.
type IdentityUsecase interface {
	// ResolveProfile returns the profile of a principal or ErrProfileNotFound.
	ResolveProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile changes contact fields. Role and email are fixed.
	UpdateProfile(ctx context.Context, principalID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// Subscribe registers an observer and returns the function that removes it.
	Subscribe(observer SessionObserver) (unsubscribe func())

	// NotifySession publishes a session change. A nil principal means signed out.
	NotifySession(ctx context.Context, principalID *uuid.UUID)
}
