package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	bakeryRepo  repository.BakeryRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	BakeryRepo  repository.BakeryRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		bakeryRepo:  params.BakeryRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the request, prices it at the cake's current price and records it as pending.
// The cake read and the insert share one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if _, err := requireProfileRole(ctx, srv.profileRepo, customerID, entity.RoleCustomer); err != nil {
		return nil, err
	}

	if input.Quantity < 1 || input.Quantity > entity.MaxOrderQuantity {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(fmt.Sprintf("quantity must be between 1 and %d", entity.MaxOrderQuantity))
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.CakeRepo().FindAvailableListing(ctx, input.CakeID)
		if err != nil {
			if errors.Is(err, repository.ErrCakeNotFound) {
				return domainerrors.ErrCakeUnavailable.WrapMessage("cake is missing or not available")
			}

			return errors.Wrap(err, "failed to find cake")
		}

		deliveryAddress, err := resolveDeliveryAddress(input.DeliveryType, input.DeliveryAddress)
		if err != nil {
			return err
		}

		total := listing.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		if total.GreaterThan(entity.MaxOrderTotal) {
			return domainerrors.ErrInvalidInput.WrapMessage("order total exceeds " + entity.MaxOrderTotal.StringFixed(2))
		}

		order := &entity.Order{
			ID:                  uuid.New(),
			CustomerID:          customerID,
			CakeID:              listing.ID,
			BakeryID:            listing.BakeryID,
			Quantity:            input.Quantity,
			TotalAmount:         total,
			DeliveryType:        input.DeliveryType,
			DeliveryAddress:     deliveryAddress,
			PreferredTime:       input.PreferredTime,
			SpecialInstructions: strings.TrimSpace(input.SpecialInstructions),
			Status:              entity.OrderStatusPending,
			PaymentStatus:       entity.PaymentStatusPending,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		placed = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", placed.ID),
		slog.Any("bakeryID", placed.BakeryID),
		slog.String("total", placed.TotalAmount.StringFixed(2)),
	)

	return placed, nil
}

// resolveDeliveryAddress enforces the address rule: required for delivery, cleared for pickup.
func resolveDeliveryAddress(deliveryType entity.DeliveryType, address string) (string, error) {
	switch deliveryType {
	case entity.DeliveryTypePickup:
		return "", nil
	case entity.DeliveryTypeDelivery:
		address = strings.TrimSpace(address)
		if address == "" {
			return "", domainerrors.ErrInvalidInput.WrapMessage("delivery address is required for delivery")
		}

		return address, nil
	default:
		return "", domainerrors.ErrInvalidInput.WrapMessage("unknown delivery type")
	}
}

func (srv *orderService) ListOrdersForCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrderView, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

func (srv *orderService) ListOrdersForBakery(ctx context.Context, callerID, bakeryID uuid.UUID) ([]*entity.BakeryOrderView, error) {
	if _, err := ownedBakery(ctx, srv.bakeryRepo, callerID, bakeryID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByBakery(ctx, bakeryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bakery orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along its workflow on behalf of the bakery owner.
// The write only applies while the stored status is the one read here.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID, callerID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if _, err := ownedBakery(ctx, srv.bakeryRepo, callerID, order.BakeryID); err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown order status")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "%s to %s", order.Status, status)
	}

	updated, err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderStatusConflict):
			return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "order left %s before the update", order.Status)
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		default:
			return nil, errors.Wrap(err, "failed to update order status")
		}
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("from", order.Status.String()),
		slog.String("to", status.String()),
	)

	return updated, nil
}
