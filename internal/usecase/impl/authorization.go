package impl

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireProfileRole loads a profile and checks it acts on the given marketplace side.
func requireProfileRole(ctx context.Context, profileRepo repository.ProfileRepository, profileID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	profile, err := profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("caller profile not found")
		}

		return nil, errors.Wrap(err, "failed to find caller profile")
	}

	if profile.Role != role {
		return nil, errors.Wrapf(domainerrors.ErrUnauthorized, "profile %s is not a %s", profileID, role)
	}

	return profile, nil
}

// ownedBakery loads a bakery and checks the caller owns it.
func ownedBakery(ctx context.Context, bakeryRepo repository.BakeryRepository, callerID, bakeryID uuid.UUID) (*entity.Bakery, error) {
	bakery, err := bakeryRepo.FindByID(ctx, bakeryID)
	if err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, domainerrors.ErrBakeryNotFound.WrapMessage("bakery not found")
		}

		return nil, errors.Wrap(err, "failed to find bakery")
	}

	if !bakery.IsOwnedBy(callerID) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller does not own the bakery")
	}

	return bakery, nil
}

// cakeOwnedBy loads a cake and checks the caller owns its bakery.
func cakeOwnedBy(
	ctx context.Context,
	cakeRepo repository.CakeRepository,
	bakeryRepo repository.BakeryRepository,
	callerID, cakeID uuid.UUID,
) (*entity.Cake, error) {
	cake, err := cakeRepo.FindByID(ctx, cakeID)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return nil, domainerrors.ErrCakeNotFound.WrapMessage("cake not found")
		}

		return nil, errors.Wrap(err, "failed to find cake")
	}

	if _, err := ownedBakery(ctx, bakeryRepo, callerID, cake.BakeryID); err != nil {
		return nil, err
	}

	return cake, nil
}
