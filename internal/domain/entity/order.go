package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions lists the forward step allowed from each non-terminal status.
// Cancellation is handled separately since it is reachable from all of them.
var orderTransitions = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusConfirmed,
	OrderStatusConfirmed:  OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusReady,
	OrderStatusReady:      OrderStatusCompleted,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the six known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal move from s.
// Only the single forward step or a cancellation of a non-terminal order is accepted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return orderTransitions[s] == next
}

// DeliveryType is how the customer receives the cake.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// IsValid checks if the DeliveryType is a valid value.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypePickup || d == DeliveryTypeDelivery
}

// PaymentStatus tracks payment for an order. No gateway moves it past pending yet.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// MaxOrderQuantity caps a single order line.
const MaxOrderQuantity = 1000

// MaxOrderTotal is the largest total a numeric(12,2) column holds.
var MaxOrderTotal = decimal.RequireFromString("9999999999.99")

// Order is a customer's purchase of one cake from one bakery.
// TotalAmount and BakeryID are captured at placement and never recomputed.
type Order struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	CakeID              uuid.UUID
	BakeryID            uuid.UUID
	Quantity            int
	TotalAmount         decimal.Decimal
	DeliveryType        DeliveryType
	DeliveryAddress     string // Empty for pickup.
	PreferredTime       *time.Time
	SpecialInstructions string
	Status              OrderStatus
	PaymentStatus       PaymentStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CustomerOrderView is an order as listed to the customer who placed it.
type CustomerOrderView struct {
	Order
	CakeName      string
	CakePrice     decimal.Decimal
	BakeryName    string
	BakeryAddress string
}

// BakeryOrderView is an order as listed to the seller fulfilling it.
type BakeryOrderView struct {
	Order
	CakeName      string
	CakePrice     decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}
