package repository

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when the stored status no longer matches the expected one.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order, reading from the primary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus moves an order from one status to another.
	// Only status and updated_at are written, and only while the stored status equals from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error)

	// ListByCustomer returns the orders of a customer profile, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrderView, error)

	// ListByBakery returns the orders received by a bakery, newest first.
	ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.BakeryOrderView, error)

	// CountByCake returns how many orders reference a cake.
	CountByCake(ctx context.Context, cakeID uuid.UUID) (int64, error)
}
