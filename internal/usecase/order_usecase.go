package usecase

import (
	"context"
	"time"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data a customer submits with an order.
type PlaceOrderInput struct {
	CakeID              uuid.UUID
	Quantity            int
	DeliveryType        entity.DeliveryType
	DeliveryAddress     string
	PreferredTime       *time.Time
	SpecialInstructions string
}

// OrderUsecase places orders and drives them through their status workflow.
type OrderUsecase interface {
	// PlaceOrder records a pending order priced at the cake's current price.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	ListOrdersForCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrderView, error)

	// ListOrdersForBakery requires the caller to own the bakery.
	ListOrdersForBakery(ctx context.Context, callerID, bakeryID uuid.UUID) ([]*entity.BakeryOrderView, error)

	// UpdateOrderStatus applies a seller-driven status transition.
	UpdateOrderStatus(ctx context.Context, orderID, callerID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
