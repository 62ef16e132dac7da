package context

import (
	"context"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyPrincipalID is the key for the authenticated principal.
	KeyPrincipalID ContextKey = "principal_id"

	// KeyProfile is the key for the resolved marketplace profile.
	KeyProfile ContextKey = "profile"
)

// SetPrincipalID stores the authenticated principal in both echo.Context and the request context.
func SetPrincipalID(c echo.Context, principalID uuid.UUID) {
	c.Set(string(KeyPrincipalID), principalID)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyPrincipalID, principalID)))
}

// GetPrincipalID returns the authenticated principal, if any.
func GetPrincipalID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyPrincipalID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetPrincipalIDFromContext extracts the principal from a standard context.Context.
func GetPrincipalIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyPrincipalID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// SetProfile stores the caller's profile in echo.Context.
func SetProfile(c echo.Context, profile *entity.Profile) {
	c.Set(string(KeyProfile), profile)
}

// GetProfile returns the caller's profile, if it was resolved.
func GetProfile(c echo.Context) (*entity.Profile, bool) {
	profile, ok := c.Get(string(KeyProfile)).(*entity.Profile)

	return profile, ok && profile != nil
}
