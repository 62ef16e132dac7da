package impl

import (
	"context"
	"testing"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	mockRepo "bakeandtaste/internal/mocks/repository"
	mockSvc "bakeandtaste/internal/mocks/service"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	bakeryRepo  *mockRepo.MockBakeryRepository
	cakeRepo    *mockRepo.MockCakeRepository
	qrcode      *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	bakeryRepo := mockRepo.NewMockBakeryRepository(t)
	cakeRepo := mockRepo.NewMockCakeRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:     txManager,
		ProfileRepo:   profileRepo,
		BakeryRepo:    bakeryRepo,
		CakeRepo:      cakeRepo,
		QRCodeService: qrcode,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		bakeryRepo:  bakeryRepo,
		cakeRepo:    cakeRepo,
		qrcode:      qrcode,
	}
}

func validCakeInput() *usecase.CakeInput {
	return &usecase.CakeInput{
		Name:             "Chocolate Fudge",
		Price:            decimal.RequireFromString("12.50"),
		Category:         "chocolate",
		Allergens:        "gluten, dairy,, Dairy ,eggs",
		Available:        true,
		PreparationHours: 24,
	}
}

func TestCatalogService_ListAvailableCakes_NormalizesPage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	listings := []*entity.CakeListing{{Cake: entity.Cake{ID: uuid.New(), Available: true}, BakeryName: "Sweet Crumbs"}}

	fx.cakeRepo.EXPECT().
		ListAvailable(ctx, entity.CakeFilter{Category: "fruit", Page: entity.Page{Limit: 50, Offset: 10}}).
		Return(listings, nil)

	got, err := fx.service.ListAvailableCakes(ctx, entity.CakeFilter{
		Category: " fruit ",
		Page:     entity.Page{Limit: 500, Offset: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestCatalogService_ListAvailableCakes_DefaultPage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cakeRepo.EXPECT().
		ListAvailable(ctx, entity.CakeFilter{Page: entity.Page{Limit: 20}}).
		Return([]*entity.CakeListing{}, nil)

	got, err := fx.service.ListAvailableCakes(ctx, entity.CakeFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogService_GetAvailableCake_MissingOrUnavailable(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	cakeID := uuid.New()

	fx.cakeRepo.EXPECT().FindAvailableListing(ctx, cakeID).Return(nil, repository.ErrCakeNotFound)

	_, err := fx.service.GetAvailableCake(ctx, cakeID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_GetBakery(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	bakery := newBakery(uuid.New())
	missingID := uuid.New()

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.bakeryRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrBakeryNotFound)

	got, err := fx.service.GetBakery(ctx, bakery.ID)
	require.NoError(t, err)
	assert.Equal(t, bakery, got)

	_, err = fx.service.GetBakery(ctx, missingID)
	assert.True(t, errors.Is(err, domainerrors.ErrBakeryNotFound))
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_GenerateBakeryQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	bakery := newBakery(uuid.New())

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.qrcode.EXPECT().GenerateBakeryQR(bakery.ID).Return([]byte("png"), nil)

	png, err := fx.service.GenerateBakeryQR(ctx, bakery.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCatalogService_GenerateBakeryQR_UnknownBakery(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	bakeryID := uuid.New()

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakeryID).Return(nil, repository.ErrBakeryNotFound)

	_, err := fx.service.GenerateBakeryQR(ctx, bakeryID)
	assert.True(t, errors.Is(err, domainerrors.ErrBakeryNotFound))
}

func TestCatalogService_GetOwnBakery_Absent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	seller := newProfile(entity.RoleSeller)

	fx.profileRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.bakeryRepo.EXPECT().FindByOwner(ctx, seller.ID).Return(nil, repository.ErrBakeryNotFound)

	bakery, err := fx.service.GetOwnBakery(ctx, seller.ID)
	require.NoError(t, err)
	assert.Nil(t, bakery)
}

func TestCatalogService_GetOwnBakery_CustomerRejected(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	customer := newProfile(entity.RoleCustomer)

	fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.GetOwnBakery(ctx, customer.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_UpsertBakery_CreatesWhenAbsent(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	seller := newProfile(entity.RoleSeller)

	repos.profileRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	repos.bakeryRepo.EXPECT().FindByOwner(ctx, seller.ID).Return(nil, repository.ErrBakeryNotFound)
	repos.bakeryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Bakery) bool {
			return b.OwnerID == seller.ID && b.Name == "Sweet Crumbs" && b.ID != uuid.Nil
		})).
		Return(nil)

	bakery, err := fx.service.UpsertBakery(ctx, seller.ID, &usecase.BakeryInput{Name: " Sweet Crumbs ", Address: "12 Baker Street"})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, bakery.OwnerID)
	assert.Equal(t, "12 Baker Street", bakery.Address)
}

func TestCatalogService_UpsertBakery_UpdatesInPlace(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	seller := newProfile(entity.RoleSeller)
	existing := newBakery(seller.ID)
	existingID := existing.ID

	repos.profileRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	repos.bakeryRepo.EXPECT().FindByOwner(ctx, seller.ID).Return(existing, nil)
	repos.bakeryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(b *entity.Bakery) bool {
			return b.ID == existingID && b.Name == "Crumbs & Co"
		})).
		Return(nil)

	bakery, err := fx.service.UpsertBakery(ctx, seller.ID, &usecase.BakeryInput{Name: "Crumbs & Co"})
	require.NoError(t, err)
	assert.Equal(t, existingID, bakery.ID)
}

func TestCatalogService_UpsertBakery_Rejections(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.UpsertBakery(context.Background(), uuid.New(), &usecase.BakeryInput{Name: "  "})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("customer caller", func(t *testing.T) {
		fx := createTestCatalogService(t)
		repos := newTxRepos(t)
		expectTransaction(fx.txManager, repos)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)

		repos.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := fx.service.UpsertBakery(ctx, customer.ID, &usecase.BakeryInput{Name: "Nope"})
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestCatalogService_ListOwnCakes_NotOwner(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	bakery := newBakery(uuid.New())

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)

	_, err := fx.service.ListOwnCakes(ctx, uuid.New(), bakery.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_ListOwnCakes_IncludesUnavailable(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	cakes := []*entity.Cake{
		{ID: uuid.New(), BakeryID: bakery.ID, Available: true},
		{ID: uuid.New(), BakeryID: bakery.ID, Available: false},
	}

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.cakeRepo.EXPECT().ListByBakery(ctx, bakery.ID).Return(cakes, nil)

	got, err := fx.service.ListOwnCakes(ctx, ownerID, bakery.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_CreateCake(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.cakeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cake")).Return(nil)

	cake, err := fx.service.CreateCake(ctx, ownerID, bakery.ID, validCakeInput())
	require.NoError(t, err)
	assert.Equal(t, bakery.ID, cake.BakeryID)
	assert.Equal(t, []string{"gluten", "dairy", "eggs"}, cake.Allergens)
	assert.True(t, cake.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestCatalogService_CreateCake_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CakeInput)
	}{
		{name: "empty name", mutate: func(in *usecase.CakeInput) { in.Name = " " }},
		{name: "zero price", mutate: func(in *usecase.CakeInput) { in.Price = decimal.Zero }},
		{name: "negative price", mutate: func(in *usecase.CakeInput) { in.Price = decimal.NewFromInt(-3) }},
		{name: "price rounds to zero", mutate: func(in *usecase.CakeInput) { in.Price = decimal.RequireFromString("0.001") }},
		{name: "negative preparation", mutate: func(in *usecase.CakeInput) { in.PreparationHours = -1 }},
		{name: "price beyond stored precision", mutate: func(in *usecase.CakeInput) { in.Price = decimal.RequireFromString("100000000") }},
		{name: "preparation beyond a year", mutate: func(in *usecase.CakeInput) { in.PreparationHours = entity.MaxPreparationHours + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := validCakeInput()
			tt.mutate(input)

			_, err := fx.service.CreateCake(context.Background(), uuid.New(), uuid.New(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestCatalogService_UpdateCake_ReplacesFields(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakery.ID, Name: "Old", Allergens: []string{"nuts"}}

	input := validCakeInput()
	input.Allergens = ""

	repos.cakeRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	repos.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	repos.cakeRepo.EXPECT().Update(ctx, cake).Return(nil)

	updated, err := fx.service.UpdateCake(ctx, ownerID, cake.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Fudge", updated.Name)
	assert.Empty(t, updated.Allergens)
}

func TestCatalogService_DeleteCake(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakery.ID}

	repos.cakeRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	repos.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	repos.orderRepo.EXPECT().CountByCake(ctx, cake.ID).Return(int64(0), nil)
	repos.cakeRepo.EXPECT().Delete(ctx, cake.ID).Return(nil)

	require.NoError(t, fx.service.DeleteCake(ctx, ownerID, cake.ID))
}

func TestCatalogService_DeleteCake_ReferencedByOrders(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakery.ID}

	repos.cakeRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	repos.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	repos.orderRepo.EXPECT().CountByCake(ctx, cake.ID).Return(int64(2), nil)

	err := fx.service.DeleteCake(ctx, ownerID, cake.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCakeInUse))
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCatalogService_DeleteCake_NotOwner(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	bakery := newBakery(uuid.New())
	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakery.ID}

	repos.cakeRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	repos.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)

	err := fx.service.DeleteCake(ctx, uuid.New(), cake.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_SetAvailability_Idempotent(t *testing.T) {
	fx := createTestCatalogService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	cake := &entity.Cake{ID: uuid.New(), BakeryID: bakery.ID, Available: true}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Twice()
	repos.cakeRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil).Twice()
	repos.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil).Twice()
	repos.cakeRepo.EXPECT().SetAvailability(ctx, cake.ID, false).Return(nil).Once()

	first, err := fx.service.SetAvailability(ctx, ownerID, cake.ID, false)
	require.NoError(t, err)
	assert.False(t, first.Available)

	// The stored flag already matches, so the second call writes nothing.
	second, err := fx.service.SetAvailability(ctx, ownerID, cake.ID, false)
	require.NoError(t, err)
	assert.False(t, second.Available)
}
