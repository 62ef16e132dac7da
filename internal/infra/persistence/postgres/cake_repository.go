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

const cakeListingColumns = "cakes.*, bakeries.name AS bakery_name, bakeries.address AS bakery_address"

// cakeRepository implements the repository.CakeRepository interface.
type cakeRepository struct {
	db *gorm.DB
}

// NewCakeRepository is the constructor for cakeRepository.
func NewCakeRepository(db *gorm.DB) repository.CakeRepository {
	return &cakeRepository{db: db}
}

// FindByID retrieves a cake regardless of availability.
func (repo *cakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error) {
	var cakeM model.CakeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cakeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCakeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cake by ID")
	}

	return toCakeDomain(&cakeM), nil
}

// FindAvailableListing retrieves an available cake joined with its bakery.
func (repo *cakeRepository) FindAvailableListing(ctx context.Context, id uuid.UUID) (*entity.CakeListing, error) {
	var rows []*model.CakeListingRow

	if err := repo.listingQuery(ctx).
		Where("cakes.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cake listing")
	}

	if len(rows) == 0 {
		return nil, repository.ErrCakeNotFound
	}

	return toCakeListingDomain(rows[0]), nil
}

// ListAvailable returns available cakes matching the filter, newest first.
func (repo *cakeRepository) ListAvailable(ctx context.Context, filter entity.CakeFilter) ([]*entity.CakeListing, error) {
	query := repo.listingQuery(ctx)
	if filter.Category != "" {
		query = query.Where("cakes.category = ?", filter.Category)
	}
	if filter.BakeryID != uuid.Nil {
		query = query.Where("cakes.bakery_id = ?", filter.BakeryID)
	}
	if filter.Page.Limit > 0 {
		query = query.Limit(filter.Page.Limit)
	}
	if filter.Page.Offset > 0 {
		query = query.Offset(filter.Page.Offset)
	}

	var rows []*model.CakeListingRow
	if err := query.
		Order("cakes.created_at DESC").
		Order("cakes.id").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list available cakes")
	}

	listings := make([]*entity.CakeListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, toCakeListingDomain(row))
	}

	return listings, nil
}

func (repo *cakeRepository) listingQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Select(cakeListingColumns).
		Joins("JOIN bakeries ON bakeries.id = cakes.bakery_id").
		Where("cakes.available = ?", true)
}

// ListByBakery returns every cake of a bakery, newest first.
func (repo *cakeRepository) ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.Cake, error) {
	var cakeModels []*model.CakeModel

	if err := repo.db.WithContext(ctx).
		Where("bakery_id = ?", bakeryID).
		Order("created_at DESC").
		Find(&cakeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cakes by bakery")
	}

	cakes := make([]*entity.Cake, 0, len(cakeModels))
	for _, cakeM := range cakeModels {
		cakes = append(cakes, toCakeDomain(cakeM))
	}

	return cakes, nil
}

// Create persists a new cake.
func (repo *cakeRepository) Create(ctx context.Context, cake *entity.Cake) error {
	cakeM := fromCakeDomain(cake)

	if err := repo.db.WithContext(ctx).Create(cakeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBakeryNotFound
		}
		if isRejectedValue(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("cake violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cake")
	}

	cake.CreatedAt = cakeM.CreatedAt
	cake.UpdatedAt = cakeM.UpdatedAt

	return nil
}

// Update writes every editable field of a cake.
func (repo *cakeRepository) Update(ctx context.Context, cake *entity.Cake) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Where("id = ?", cake.ID).
		Updates(map[string]any{
			"name":              cake.Name,
			"description":       cake.Description,
			"price":             cake.Price,
			"category":          cake.Category,
			"allergens":         model.StringList(cake.Allergens),
			"image_url":         cake.ImageURL,
			"available":         cake.Available,
			"preparation_hours": cake.PreparationHours,
			"updated_at":        gorm.Expr("now()"),
		})

	if result.Error != nil {
		if isRejectedValue(result.Error) {
			return domainerrors.ErrInvalidInput.WrapMessage("cake violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cake")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

// Delete removes a cake. Orders restrict the delete through their foreign key.
func (repo *cakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CakeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCakeInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cake")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

// SetAvailability writes only the available flag.
func (repo *cakeRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"available":  available,
			"updated_at": gorm.Expr("now()"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set cake availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

func toCakeDomain(data *model.CakeModel) *entity.Cake {
	allergens := []string(data.Allergens)
	if allergens == nil {
		allergens = []string{}
	}

	return &entity.Cake{
		ID:               data.ID,
		BakeryID:         data.BakeryID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		Category:         data.Category,
		Allergens:        allergens,
		ImageURL:         data.ImageURL,
		Available:        data.Available,
		PreparationHours: data.PreparationHours,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toCakeListingDomain(data *model.CakeListingRow) *entity.CakeListing {
	return &entity.CakeListing{
		Cake:          *toCakeDomain(&data.CakeModel),
		BakeryName:    data.BakeryName,
		BakeryAddress: data.BakeryAddress,
	}
}

func fromCakeDomain(data *entity.Cake) *model.CakeModel {
	return &model.CakeModel{
		ID:               data.ID,
		BakeryID:         data.BakeryID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		Category:         data.Category,
		Allergens:        model.StringList(data.Allergens),
		ImageURL:         data.ImageURL,
		Available:        data.Available,
		PreparationHours: data.PreparationHours,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
