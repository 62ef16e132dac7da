package usecase

import (
	"context"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        entity.Role // Empty means customer.
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the access token and the provisioned profile.
type AuthOutput struct {
	AccessToken string
	Profile     *entity.Profile
}

// AccountUsecase authenticates principals and provisions their profile.
type AccountUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthOutput, error)
	SignOut(ctx context.Context, principalID uuid.UUID) error
}
