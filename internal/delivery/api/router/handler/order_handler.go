package handler

import (
	"net/http"
	"time"

	"bakeandtaste/internal/delivery/api/response"
	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the customer side of ordering.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// PlaceOrderRequest represents the request body for placing an order.
// Delivery type and address are checked by the order service after the cake lookup.
type PlaceOrderRequest struct {
	CakeID              uuid.UUID  `json:"cake_id" validate:"required"`
	Quantity            int        `json:"quantity" validate:"required,min=1,max=1000"`
	DeliveryType        string     `json:"delivery_type"`
	DeliveryAddress     string     `json:"delivery_address" validate:"max=500"`
	PreferredTime       *time.Time `json:"preferred_time"`
	SpecialInstructions string     `json:"special_instructions" validate:"max=1000"`
}

// PlaceOrder records a pending order for the calling customer.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), profile.ID, &usecase.PlaceOrderInput{
		CakeID:              req.CakeID,
		Quantity:            req.Quantity,
		DeliveryType:        entity.DeliveryType(req.DeliveryType),
		DeliveryAddress:     req.DeliveryAddress,
		PreferredTime:       req.PreferredTime,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// ListOrders returns the calling customer's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	views, err := h.orderUC.ListOrdersForCustomer(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapSlice(views, toCustomerOrderResponse), 0, 0)
}
