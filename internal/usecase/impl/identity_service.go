// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger

	mu        sync.Mutex
	nextID    uint64
	observers []registeredObserver // subscription order
}

type registeredObserver struct {
	id       uint64
	observer usecase.SessionObserver
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveProfile returns the profile of an authenticated principal.
func (srv *identityService) ResolveProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByPrincipalID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("no profile for principal")
		}

		return nil, errors.Wrap(err, "failed to resolve profile")
	}

	return profile, nil
}

// UpdateProfile changes the contact fields of the caller's profile.
func (srv *identityService) UpdateProfile(ctx context.Context, principalID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if input.DisplayName != nil && strings.TrimSpace(*input.DisplayName) == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("display name cannot be empty")
	}

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByPrincipalID(ctx, principalID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("no profile for principal")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if input.DisplayName != nil {
			profile.DisplayName = strings.TrimSpace(*input.DisplayName)
		}
		if input.Phone != nil {
			profile.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.Address != nil {
			profile.Address = strings.TrimSpace(*input.Address)
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("profileID", updated.ID))

	return updated, nil
}

// Subscribe registers an observer of session changes.
func (srv *identityService) Subscribe(observer usecase.SessionObserver) func() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := srv.nextID
	srv.nextID++
	srv.observers = append(srv.observers, registeredObserver{id: id, observer: observer})

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.mu.Lock()
			srv.observers = slices.DeleteFunc(srv.observers, func(r registeredObserver) bool { return r.id == id })
			srv.mu.Unlock()
		})
	}
}

// NotifySession resolves the profile for a session change and fans the result out to every observer
// in subscription order.
func (srv *identityService) NotifySession(ctx context.Context, principalID *uuid.UUID) {
	state := usecase.SessionState{PrincipalID: principalID}
	if principalID != nil {
		state.Profile, state.Err = srv.ResolveProfile(ctx, *principalID)
		if state.Err != nil {
			srv.log(ctx).Warn("Profile resolution failed for session change",
				slog.Any("principalID", *principalID), slog.Any("error", state.Err))
		}
	}

	srv.mu.Lock()
	observers := slices.Clone(srv.observers)
	srv.mu.Unlock()

	for _, r := range observers {
		r.observer(state)
	}
}
