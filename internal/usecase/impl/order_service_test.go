package impl

import (
	"context"
	"testing"
	"time"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	mockRepo "bakeandtaste/internal/mocks/repository"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	bakeryRepo  *mockRepo.MockBakeryRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	bakeryRepo := mockRepo.NewMockBakeryRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		BakeryRepo:  bakeryRepo,
		OrderRepo:   orderRepo,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		bakeryRepo:  bakeryRepo,
		orderRepo:   orderRepo,
	}
}

func availableListing(price string) *entity.CakeListing {
	return &entity.CakeListing{
		Cake: entity.Cake{
			ID:        uuid.New(),
			BakeryID:  uuid.New(),
			Name:      "Lemon Drizzle",
			Price:     decimal.RequireFromString(price),
			Available: true,
		},
		BakeryName: "Sweet Crumbs",
	}
}

func TestOrderService_PlaceOrder_Pickup(t *testing.T) {
	fx := createTestOrderService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	customer := newProfile(entity.RoleCustomer)
	listing := availableListing("12.50")
	preferred := time.Date(2026, 11, 1, 15, 0, 0, 0, time.UTC)

	fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	repos.cakeRepo.EXPECT().FindAvailableListing(ctx, listing.ID).Return(listing, nil)
	repos.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
		CakeID:          listing.ID,
		Quantity:        3,
		DeliveryType:    entity.DeliveryTypePickup,
		DeliveryAddress: "should be dropped",
		PreferredTime:   &preferred,
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("37.50")), order.TotalAmount.String())
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, listing.BakeryID, order.BakeryID)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Empty(t, order.DeliveryAddress)
	assert.Equal(t, &preferred, order.PreferredTime)
}

func TestOrderService_PlaceOrder_Delivery(t *testing.T) {
	fx := createTestOrderService(t)
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos)
	ctx := context.Background()
	customer := newProfile(entity.RoleCustomer)
	listing := availableListing("19.99")

	fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	repos.cakeRepo.EXPECT().FindAvailableListing(ctx, listing.ID).Return(listing, nil)
	repos.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.DeliveryAddress == "7 Cherry Lane" && o.TotalAmount.Equal(decimal.RequireFromString("19.99"))
		})).
		Return(nil)

	_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
		CakeID:          listing.ID,
		Quantity:        1,
		DeliveryType:    entity.DeliveryTypeDelivery,
		DeliveryAddress: " 7 Cherry Lane ",
	})
	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	t.Run("quantity below one writes nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:       uuid.New(),
			Quantity:     0,
			DeliveryType: entity.DeliveryTypePickup,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("quantity above the cap writes nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:       uuid.New(),
			Quantity:     3_000_000_000,
			DeliveryType: entity.DeliveryTypePickup,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("total beyond the stored precision writes nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		repos := newTxRepos(t)
		expectTransaction(fx.txManager, repos)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)
		listing := availableListing("99999999.99")

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		repos.cakeRepo.EXPECT().FindAvailableListing(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:       listing.ID,
			Quantity:     entity.MaxOrderQuantity,
			DeliveryType: entity.DeliveryTypePickup,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		assert.Equal(t, "order total exceeds 9999999999.99", domainerrors.PublicDetails(err))
	})

	t.Run("unavailable cake writes nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		repos := newTxRepos(t)
		expectTransaction(fx.txManager, repos)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)
		cakeID := uuid.New()

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		repos.cakeRepo.EXPECT().FindAvailableListing(ctx, cakeID).Return(nil, repository.ErrCakeNotFound)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:       cakeID,
			Quantity:     1,
			DeliveryType: entity.DeliveryTypePickup,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrCakeUnavailable))
	})

	t.Run("delivery without address writes nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		repos := newTxRepos(t)
		expectTransaction(fx.txManager, repos)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)
		listing := availableListing("10.00")

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		repos.cakeRepo.EXPECT().FindAvailableListing(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:          listing.ID,
			Quantity:        2,
			DeliveryType:    entity.DeliveryTypeDelivery,
			DeliveryAddress: "   ",
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("unknown delivery type", func(t *testing.T) {
		fx := createTestOrderService(t)
		repos := newTxRepos(t)
		expectTransaction(fx.txManager, repos)
		ctx := context.Background()
		customer := newProfile(entity.RoleCustomer)
		listing := availableListing("10.00")

		fx.profileRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		repos.cakeRepo.EXPECT().FindAvailableListing(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.PlaceOrder(ctx, customer.ID, &usecase.PlaceOrderInput{
			CakeID:       listing.ID,
			Quantity:     1,
			DeliveryType: "drone",
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("seller cannot order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		seller := newProfile(entity.RoleSeller)

		fx.profileRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

		_, err := fx.service.PlaceOrder(ctx, seller.ID, &usecase.PlaceOrderInput{Quantity: 1, DeliveryType: entity.DeliveryTypePickup})
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("unknown caller profile", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		callerID := uuid.New()

		fx.profileRepo.EXPECT().FindByID(ctx, callerID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.PlaceOrder(ctx, callerID, &usecase.PlaceOrderInput{Quantity: 1, DeliveryType: entity.DeliveryTypePickup})
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestOrderService_ListOrdersForBakery_RequiresOwner(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	bakery := newBakery(uuid.New())

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)

	_, err := fx.service.ListOrdersForBakery(ctx, uuid.New(), bakery.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_ListOrdersForBakery(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	views := []*entity.BakeryOrderView{{Order: entity.Order{ID: uuid.New(), BakeryID: bakery.ID}, CustomerName: "Ann"}}

	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.orderRepo.EXPECT().ListByBakery(ctx, bakery.ID).Return(views, nil)

	got, err := fx.service.ListOrdersForBakery(ctx, ownerID, bakery.ID)
	require.NoError(t, err)
	assert.Equal(t, views, got)
}

func TestOrderService_ListOrdersForCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	views := []*entity.CustomerOrderView{{Order: entity.Order{ID: uuid.New(), CustomerID: customerID}, CakeName: "Lemon Drizzle"}}

	fx.orderRepo.EXPECT().ListByCustomer(ctx, customerID).Return(views, nil)

	got, err := fx.service.ListOrdersForCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, views, got)
}

// orderStore backs the order repository mock with one in-memory order.
type orderStore struct {
	order *entity.Order
}

func (s *orderStore) wire(orderRepo *mockRepo.MockOrderRepository) {
	orderRepo.EXPECT().
		FindByID(mock.Anything, s.order.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			copied := *s.order
			return &copied, nil
		}).
		Maybe()
	orderRepo.EXPECT().
		UpdateStatus(mock.Anything, s.order.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
			if s.order.Status != from {
				return nil, repository.ErrOrderStatusConflict
			}
			s.order.Status = to
			copied := *s.order
			return &copied, nil
		}).
		Maybe()
}

func newOrderFixture(t *testing.T, status entity.OrderStatus) (orderServiceFixtures, *orderStore, uuid.UUID) {
	fx := createTestOrderService(t)
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	store := &orderStore{order: &entity.Order{
		ID:          uuid.New(),
		BakeryID:    bakery.ID,
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("25.00"),
		Status:      status,
	}}
	store.wire(fx.orderRepo)
	fx.bakeryRepo.EXPECT().FindByID(mock.Anything, bakery.ID).Return(bakery, nil).Maybe()

	return fx, store, ownerID
}

func TestOrderService_UpdateOrderStatus_FullForwardChain(t *testing.T) {
	fx, store, ownerID := newOrderFixture(t, entity.OrderStatusPending)
	ctx := context.Background()

	for _, next := range []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusInProgress,
		entity.OrderStatusReady,
		entity.OrderStatusCompleted,
	} {
		order, err := fx.service.UpdateOrderStatus(ctx, store.order.ID, ownerID, next)
		require.NoError(t, err, next)
		assert.Equal(t, next, order.Status)
	}

	assert.True(t, store.order.TotalAmount.Equal(decimal.RequireFromString("25.00")))
}

func TestOrderService_UpdateOrderStatus_RejectsSkip(t *testing.T) {
	fx, store, ownerID := newOrderFixture(t, entity.OrderStatusPending)

	_, err := fx.service.UpdateOrderStatus(context.Background(), store.order.ID, ownerID, entity.OrderStatusInProgress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, entity.OrderStatusPending, store.order.Status)
}

func TestOrderService_UpdateOrderStatus_TerminalStates(t *testing.T) {
	for _, terminal := range []entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		t.Run(terminal.String(), func(t *testing.T) {
			fx, store, ownerID := newOrderFixture(t, terminal)

			for _, next := range []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusCancelled, entity.OrderStatusReady} {
				_, err := fx.service.UpdateOrderStatus(context.Background(), store.order.ID, ownerID, next)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition), "%s -> %s", terminal, next)
			}
			assert.Equal(t, terminal, store.order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_CancelFromAnyOpenState(t *testing.T) {
	for _, open := range []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusConfirmed,
		entity.OrderStatusInProgress,
		entity.OrderStatusReady,
	} {
		t.Run(open.String(), func(t *testing.T) {
			fx, store, ownerID := newOrderFixture(t, open)

			order, err := fx.service.UpdateOrderStatus(context.Background(), store.order.ID, ownerID, entity.OrderStatusCancelled)
			require.NoError(t, err)
			assert.Equal(t, entity.OrderStatusCancelled, order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_NotOwner(t *testing.T) {
	fx, store, _ := newOrderFixture(t, entity.OrderStatusPending)

	_, err := fx.service.UpdateOrderStatus(context.Background(), store.order.ID, uuid.New(), entity.OrderStatusConfirmed)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Equal(t, entity.OrderStatusPending, store.order.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx, store, ownerID := newOrderFixture(t, entity.OrderStatusPending)

	_, err := fx.service.UpdateOrderStatus(context.Background(), store.order.ID, ownerID, entity.OrderStatus("shipped"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestOrderService_UpdateOrderStatus_MissingOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, orderID, uuid.New(), entity.OrderStatusConfirmed)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_UpdateOrderStatus_MissingBakery(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BakeryID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.bakeryRepo.EXPECT().FindByID(ctx, order.BakeryID).Return(nil, repository.ErrBakeryNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, uuid.New(), entity.OrderStatusConfirmed)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_UpdateOrderStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	bakery := newBakery(ownerID)
	order := &entity.Order{ID: uuid.New(), BakeryID: bakery.ID, Status: entity.OrderStatusConfirmed}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.bakeryRepo.EXPECT().FindByID(ctx, bakery.ID).Return(bakery, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusInProgress).
		Return(nil, repository.ErrOrderStatusConflict)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, ownerID, entity.OrderStatusInProgress)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}
