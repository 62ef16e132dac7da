package repository

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/errors"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// AccountRepository stores the principals that can sign in.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
}
