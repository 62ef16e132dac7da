package postgres

import (
	"context"
	"path/filepath"
	"testing"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database with the marketplace tables.
// The repositories only issue portable SQL, so their WHERE clauses run unchanged here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bakeandtaste.db")), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BakeryModel{}, &model.CakeModel{}, &model.OrderModel{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedBakery(t *testing.T, db *gorm.DB) *entity.Bakery {
	t.Helper()

	bakery := &entity.Bakery{ID: uuid.New(), OwnerID: uuid.New(), Name: "Sweet Crumbs", Address: "1 Flour St"}
	require.NoError(t, NewBakeryRepository(db).Create(context.Background(), bakery))

	return bakery
}

func seedCake(t *testing.T, db *gorm.DB, bakeryID uuid.UUID, name string, available bool) *entity.Cake {
	t.Helper()

	cake := &entity.Cake{
		ID:        uuid.New(),
		BakeryID:  bakeryID,
		Name:      name,
		Price:     decimal.RequireFromString("12.50"),
		Category:  "birthday",
		Allergens: []string{"gluten"},
		Available: available,
	}
	require.NoError(t, NewCakeRepository(db).Create(context.Background(), cake))

	return cake
}

func seedOrder(t *testing.T, db *gorm.DB, cake *entity.Cake) *entity.Order {
	t.Helper()

	order := &entity.Order{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CakeID:        cake.ID,
		BakeryID:      cake.BakeryID,
		Quantity:      2,
		TotalAmount:   cake.Price.Mul(decimal.NewFromInt(2)),
		DeliveryType:  entity.DeliveryTypePickup,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}

func TestCakeRepository_ListingQueryFiltersAvailability(t *testing.T) {
	db := newTestDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []*model.CakeListingRow

		return (&cakeRepository{db: tx}).listingQuery(context.Background()).Find(&rows)
	})

	assert.Contains(t, sql, "cakes.available = true")
	assert.Contains(t, sql, "JOIN bakeries ON bakeries.id = cakes.bakery_id")
}

func TestCakeRepository_FindAvailableListing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCakeRepository(db)
	ctx := context.Background()
	bakery := seedBakery(t, db)
	onSale := seedCake(t, db, bakery.ID, "Opera", true)
	hidden := seedCake(t, db, bakery.ID, "Seasonal", false)

	listing, err := repo.FindAvailableListing(ctx, onSale.ID)
	require.NoError(t, err)
	assert.Equal(t, onSale.ID, listing.ID)
	assert.Equal(t, "Sweet Crumbs", listing.BakeryName)
	assert.Equal(t, "1 Flour St", listing.BakeryAddress)
	assert.True(t, listing.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, []string{"gluten"}, listing.Allergens)

	_, err = repo.FindAvailableListing(ctx, hidden.ID)
	assert.ErrorIs(t, err, repository.ErrCakeNotFound)

	_, err = repo.FindAvailableListing(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCakeNotFound)

	// Still readable by its seller.
	stored, err := repo.FindByID(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, stored.Available)
}

func TestCakeRepository_SetAvailabilityHidesListing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCakeRepository(db)
	ctx := context.Background()
	cake := seedCake(t, db, seedBakery(t, db).ID, "Opera", true)

	require.NoError(t, repo.SetAvailability(ctx, cake.ID, false))
	_, err := repo.FindAvailableListing(ctx, cake.ID)
	assert.ErrorIs(t, err, repository.ErrCakeNotFound)

	require.NoError(t, repo.SetAvailability(ctx, cake.ID, true))
	_, err = repo.FindAvailableListing(ctx, cake.ID)
	assert.NoError(t, err)
}

func TestCakeRepository_ListAvailableSkipsUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCakeRepository(db)
	ctx := context.Background()
	bakery := seedBakery(t, db)
	onSale := seedCake(t, db, bakery.ID, "Opera", true)
	seedCake(t, db, bakery.ID, "Seasonal", false)

	listings, err := repo.ListAvailable(ctx, entity.CakeFilter{Page: entity.Page{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, onSale.ID, listings[0].ID)

	listings, err = repo.ListAvailable(ctx, entity.CakeFilter{Category: "wedding", Page: entity.Page{Limit: 10}})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestOrderRepository_UpdateStatusCompareAndSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db, seedCake(t, db, seedBakery(t, db).ID, "Opera", true))

	updated, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	assert.True(t, updated.TotalAmount.Equal(order.TotalAmount))

	// A writer that still believes the order is pending loses.
	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, stored.Status)
}

func TestOrderRepository_UpdateStatusMissingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatusPending, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_CreateOutOfRangeIsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	cake := seedCake(t, db, seedBakery(t, db).ID, "Opera", true)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:numeric_out_of_range", func(tx *gorm.DB) {
		_ = tx.AddError(&pgconn.PgError{Code: pgNumericOutOfRange})
	}))

	err := NewOrderRepository(db).Create(context.Background(), &entity.Order{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CakeID:        cake.ID,
		BakeryID:      cake.BakeryID,
		Quantity:      1,
		TotalAmount:   cake.Price,
		DeliveryType:  entity.DeliveryTypePickup,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.False(t, errors.Is(err, domainerrors.ErrUnavailable))
}
