package impl

import (
	"context"
	"log/slog"
	"strings"

	"bakeandtaste/config"
	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/domain/service"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager       repository.TransactionManager
	profileRepo     repository.ProfileRepository
	bakeryRepo      repository.BakeryRepository
	cakeRepo        repository.CakeRepository
	qrcodeService   service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProfileRepo   repository.ProfileRepository
	BakeryRepo    repository.BakeryRepository
	CakeRepo      repository.CakeRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		txManager:     params.TxManager,
		profileRepo:   params.ProfileRepo,
		bakeryRepo:    params.BakeryRepo,
		cakeRepo:      params.CakeRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		srv.defaultPageSize = params.Config.Catalog.DefaultPageSize
		srv.maxPageSize = params.Config.Catalog.MaxPageSize
	}

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListAvailableCakes(ctx context.Context, filter entity.CakeFilter) ([]*entity.CakeListing, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Page = filter.Page.Normalize(srv.defaultPageSize, srv.maxPageSize)

	listings, err := srv.cakeRepo.ListAvailable(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available cakes")
	}

	return listings, nil
}

func (srv *catalogService) GetAvailableCake(ctx context.Context, cakeID uuid.UUID) (*entity.CakeListing, error) {
	listing, err := srv.cakeRepo.FindAvailableListing(ctx, cakeID)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return nil, domainerrors.ErrCakeNotFound.WrapMessage("cake not found or unavailable")
		}

		return nil, errors.Wrap(err, "failed to find cake")
	}

	return listing, nil
}

func (srv *catalogService) GetBakery(ctx context.Context, bakeryID uuid.UUID) (*entity.Bakery, error) {
	bakery, err := srv.bakeryRepo.FindByID(ctx, bakeryID)
	if err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, domainerrors.ErrBakeryNotFound.WrapMessage("bakery not found")
		}

		return nil, errors.Wrap(err, "failed to find bakery")
	}

	return bakery, nil
}

func (srv *catalogService) GenerateBakeryQR(ctx context.Context, bakeryID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBakery(ctx, bakeryID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateBakeryQR(bakeryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate bakery QR code")
	}

	return png, nil
}

// GetOwnBakery returns nil without error when the seller has no bakery yet.
func (srv *catalogService) GetOwnBakery(ctx context.Context, sellerID uuid.UUID) (*entity.Bakery, error) {
	if _, err := requireProfileRole(ctx, srv.profileRepo, sellerID, entity.RoleSeller); err != nil {
		return nil, err
	}

	bakery, err := srv.bakeryRepo.FindByOwner(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrBakeryNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find own bakery")
	}

	return bakery, nil
}

func (srv *catalogService) UpsertBakery(ctx context.Context, sellerID uuid.UUID, input *usecase.BakeryInput) (*entity.Bakery, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("bakery name is required")
	}

	var result *entity.Bakery
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireProfileRole(ctx, repoFactory.ProfileRepo(), sellerID, entity.RoleSeller); err != nil {
			return err
		}

		bakeryRepo := repoFactory.BakeryRepo()
		bakery, err := bakeryRepo.FindByOwner(ctx, sellerID)
		if err != nil && !errors.Is(err, repository.ErrBakeryNotFound) {
			return errors.Wrap(err, "failed to find own bakery")
		}

		if bakery == nil {
			bakery = &entity.Bakery{ID: uuid.New(), OwnerID: sellerID}
			applyBakeryInput(bakery, name, input)
			if err := bakeryRepo.Create(ctx, bakery); err != nil {
				return errors.Wrap(err, "failed to create bakery")
			}
			srv.log(ctx).Info("Bakery created", slog.Any("bakeryID", bakery.ID), slog.Any("ownerID", sellerID))
		} else {
			applyBakeryInput(bakery, name, input)
			if err := bakeryRepo.Update(ctx, bakery); err != nil {
				return errors.Wrap(err, "failed to update bakery")
			}
		}
		result = bakery

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert bakery")
	}

	return result, nil
}

func applyBakeryInput(bakery *entity.Bakery, name string, input *usecase.BakeryInput) {
	bakery.Name = name
	bakery.Description = strings.TrimSpace(input.Description)
	bakery.Address = strings.TrimSpace(input.Address)
	bakery.Phone = strings.TrimSpace(input.Phone)
	bakery.ImageURL = strings.TrimSpace(input.ImageURL)
}

func (srv *catalogService) ListOwnCakes(ctx context.Context, callerID, bakeryID uuid.UUID) ([]*entity.Cake, error) {
	if _, err := ownedBakery(ctx, srv.bakeryRepo, callerID, bakeryID); err != nil {
		return nil, err
	}

	cakes, err := srv.cakeRepo.ListByBakery(ctx, bakeryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bakery cakes")
	}

	return cakes, nil
}

func (srv *catalogService) CreateCake(ctx context.Context, callerID, bakeryID uuid.UUID, input *usecase.CakeInput) (*entity.Cake, error) {
	if err := validateCakeInput(input); err != nil {
		return nil, err
	}

	if _, err := ownedBakery(ctx, srv.bakeryRepo, callerID, bakeryID); err != nil {
		return nil, err
	}

	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakeryID}
	applyCakeInput(cake, input)

	if err := srv.cakeRepo.Create(ctx, cake); err != nil {
		return nil, errors.Wrap(err, "failed to create cake")
	}

	srv.log(ctx).Info("Cake created", slog.Any("cakeID", cake.ID), slog.Any("bakeryID", bakeryID))

	return cake, nil
}

func (srv *catalogService) UpdateCake(ctx context.Context, callerID, cakeID uuid.UUID, input *usecase.CakeInput) (*entity.Cake, error) {
	if err := validateCakeInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Cake
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cakeRepo := repoFactory.CakeRepo()

		cake, err := cakeOwnedBy(ctx, cakeRepo, repoFactory.BakeryRepo(), callerID, cakeID)
		if err != nil {
			return err
		}

		applyCakeInput(cake, input)
		if err := cakeRepo.Update(ctx, cake); err != nil {
			return errors.Wrap(err, "failed to update cake")
		}
		updated = cake

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cake")
	}

	return updated, nil
}

// DeleteCake removes a cake that no order references.
func (srv *catalogService) DeleteCake(ctx context.Context, callerID, cakeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := cakeOwnedBy(ctx, repoFactory.CakeRepo(), repoFactory.BakeryRepo(), callerID, cakeID); err != nil {
			return err
		}

		count, err := repoFactory.OrderRepo().CountByCake(ctx, cakeID)
		if err != nil {
			return errors.Wrap(err, "failed to count cake orders")
		}
		if count > 0 {
			return domainerrors.ErrCakeInUse.WrapMessage("delete cake")
		}

		if err := repoFactory.CakeRepo().Delete(ctx, cakeID); err != nil {
			switch {
			case errors.Is(err, repository.ErrCakeInUse):
				return domainerrors.ErrCakeInUse.WrapMessage("delete cake")
			case errors.Is(err, repository.ErrCakeNotFound):
				return domainerrors.ErrCakeNotFound.WrapMessage("delete cake")
			default:
				return errors.Wrap(err, "failed to delete cake")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete cake")
	}

	srv.log(ctx).Info("Cake deleted", slog.Any("cakeID", cakeID))

	return nil
}

// SetAvailability is idempotent: setting the current value writes nothing.
func (srv *catalogService) SetAvailability(ctx context.Context, callerID, cakeID uuid.UUID, available bool) (*entity.Cake, error) {
	var result *entity.Cake
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cakeRepo := repoFactory.CakeRepo()

		cake, err := cakeOwnedBy(ctx, cakeRepo, repoFactory.BakeryRepo(), callerID, cakeID)
		if err != nil {
			return err
		}

		if cake.Available != available {
			if err := cakeRepo.SetAvailability(ctx, cakeID, available); err != nil {
				return errors.Wrap(err, "failed to set cake availability")
			}
			cake.Available = available
		}
		result = cake

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set cake availability")
	}

	return result, nil
}

func validateCakeInput(input *usecase.CakeInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrInvalidInput.WrapMessage("cake name is required")
	case !input.Price.Round(2).IsPositive():
		return domainerrors.ErrInvalidInput.WrapMessage("price must be positive")
	case input.Price.Round(2).GreaterThan(entity.MaxCakePrice):
		return domainerrors.ErrInvalidInput.WrapMessage("price exceeds " + entity.MaxCakePrice.StringFixed(2))
	case input.PreparationHours < 0:
		return domainerrors.ErrInvalidInput.WrapMessage("preparation time cannot be negative")
	case input.PreparationHours > entity.MaxPreparationHours:
		return domainerrors.ErrInvalidInput.WrapMessage("preparation time exceeds one year")
	}

	return nil
}

func applyCakeInput(cake *entity.Cake, input *usecase.CakeInput) {
	cake.Name = strings.TrimSpace(input.Name)
	cake.Description = strings.TrimSpace(input.Description)
	cake.Price = input.Price.Round(2)
	cake.Category = strings.TrimSpace(input.Category)
	cake.Allergens = entity.ParseAllergens(input.Allergens)
	cake.ImageURL = strings.TrimSpace(input.ImageURL)
	cake.Available = input.Available
	cake.PreparationHours = input.PreparationHours
}
