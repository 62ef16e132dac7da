package postgres

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bakeryRepository implements the repository.BakeryRepository interface.
type bakeryRepository struct {
	db *gorm.DB
}

// NewBakeryRepository is the constructor for bakeryRepository.
func NewBakeryRepository(db *gorm.DB) repository.BakeryRepository {
	return &bakeryRepository{db: db}
}

// FindByID retrieves a bakery by its unique ID.
func (repo *bakeryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bakery, error) {
	var bakeryM model.BakeryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bakeryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBakeryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bakery by ID")
	}

	return toBakeryDomain(&bakeryM), nil
}

// FindByOwner retrieves the oldest bakery owned by a seller profile.
func (repo *bakeryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Bakery, error) {
	var bakeryM model.BakeryModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&bakeryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBakeryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bakery by owner")
	}

	return toBakeryDomain(&bakeryM), nil
}

// Create persists a new bakery.
func (repo *bakeryRepository) Create(ctx context.Context, bakery *entity.Bakery) error {
	bakeryM := fromBakeryDomain(bakery)

	if err := repo.db.WithContext(ctx).Create(bakeryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("bakery owner does not exist")
		}
		if isRejectedValue(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("bakery violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bakery")
	}

	bakery.CreatedAt = bakeryM.CreatedAt
	bakery.UpdatedAt = bakeryM.UpdatedAt

	return nil
}

// Update writes the editable fields of a bakery. The owner never changes.
func (repo *bakeryRepository) Update(ctx context.Context, bakery *entity.Bakery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BakeryModel{}).
		Where("id = ?", bakery.ID).
		Updates(map[string]any{
			"name":        bakery.Name,
			"description": bakery.Description,
			"address":     bakery.Address,
			"phone":       bakery.Phone,
			"image_url":   bakery.ImageURL,
			"updated_at":  gorm.Expr("now()"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bakery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBakeryNotFound
	}

	return nil
}

func toBakeryDomain(data *model.BakeryModel) *entity.Bakery {
	return &entity.Bakery{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBakeryDomain(data *entity.Bakery) *model.BakeryModel {
	return &model.BakeryModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
