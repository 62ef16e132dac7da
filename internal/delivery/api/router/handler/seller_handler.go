package handler

import (
	"context"
	"net/http"

	"bakeandtaste/internal/delivery/api/response"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	OrderUC   usecase.OrderUsecase
}

// SellerHandler serves the seller's bakery management and fulfilment.
type SellerHandler struct {
	catalogUC usecase.CatalogUsecase
	orderUC   usecase.OrderUsecase
}

// NewSellerHandler is the constructor for SellerHandler.
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		catalogUC: params.CatalogUC,
		orderUC:   params.OrderUC,
	}
}

// BakeryRequest represents the editable fields of a bakery.
type BakeryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Address     string `json:"address" validate:"max=500"`
	Phone       string `json:"phone" validate:"max=32"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// CakeRequest represents the editable fields of a cake. Updates replace every field.
type CakeRequest struct {
	Name             string          `json:"name" validate:"required,max=100"`
	Description      string          `json:"description" validate:"max=2000"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category" validate:"max=50"`
	Allergens        string          `json:"allergens" validate:"max=500"`
	ImageURL         string          `json:"image_url" validate:"omitempty,url"`
	Available        *bool           `json:"available"`
	PreparationHours int             `json:"preparation_hours" validate:"gte=0,lte=8760"`
}

// AvailabilityRequest toggles whether a cake can be ordered.
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// OrderStatusRequest moves an order to a new status.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// GetBakery returns the seller's bakery. Data is null until one is created.
func (h *SellerHandler) GetBakery(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	bakery, err := h.catalogUC.GetOwnBakery(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	if bakery == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	return response.Success(c, http.StatusOK, toBakeryResponse(bakery))
}

// UpsertBakery creates or updates the seller's bakery.
func (h *SellerHandler) UpsertBakery(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req BakeryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bakery, err := h.catalogUC.UpsertBakery(c.Request().Context(), profile.ID, &usecase.BakeryInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBakeryResponse(bakery))
}

// ListCakes returns every cake of the seller's bakery, available or not.
func (h *SellerHandler) ListCakes(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	bakeryID, err := h.ownBakeryID(c.Request().Context(), profile.ID)
	if err != nil {
		return err
	}

	cakes, err := h.catalogUC.ListOwnCakes(c.Request().Context(), profile.ID, bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapSlice(cakes, toCakeResponse), 0, 0)
}

// CreateCake adds a cake to the seller's bakery.
func (h *SellerHandler) CreateCake(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req CakeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bakeryID, err := h.ownBakeryID(c.Request().Context(), profile.ID)
	if err != nil {
		return err
	}

	cake, err := h.catalogUC.CreateCake(c.Request().Context(), profile.ID, bakeryID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCakeResponse(cake))
}

// UpdateCake replaces the editable fields of one of the seller's cakes.
func (h *SellerHandler) UpdateCake(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	cakeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CakeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cake, err := h.catalogUC.UpdateCake(c.Request().Context(), profile.ID, cakeID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCakeResponse(cake))
}

// DeleteCake removes one of the seller's cakes.
func (h *SellerHandler) DeleteCake(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	cakeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCake(c.Request().Context(), profile.ID, cakeID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetAvailability toggles whether one of the seller's cakes can be ordered.
func (h *SellerHandler) SetAvailability(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	cakeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cake, err := h.catalogUC.SetAvailability(c.Request().Context(), profile.ID, cakeID, *req.Available)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCakeResponse(cake))
}

// ListOrders returns the orders received by the seller's bakery, newest first.
func (h *SellerHandler) ListOrders(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	bakeryID, err := h.ownBakeryID(c.Request().Context(), profile.ID)
	if err != nil {
		return err
	}

	views, err := h.orderUC.ListOrdersForBakery(c.Request().Context(), profile.ID, bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapSlice(views, toBakeryOrderResponse), 0, 0)
}

// UpdateOrderStatus moves one of the bakery's orders to a new status.
func (h *SellerHandler) UpdateOrderStatus(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req OrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, profile.ID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

func (h *SellerHandler) ownBakeryID(ctx context.Context, sellerID uuid.UUID) (uuid.UUID, error) {
	bakery, err := h.catalogUC.GetOwnBakery(ctx, sellerID)
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	if bakery == nil {
		return uuid.Nil, domainerrors.ErrBakeryNotFound.WrapMessage("create your bakery first")
	}

	return bakery.ID, nil
}

// toInput maps the request. A missing available flag means the cake is listed.
func (r *CakeRequest) toInput() *usecase.CakeInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return &usecase.CakeInput{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		Category:         r.Category,
		Allergens:        r.Allergens,
		ImageURL:         r.ImageURL,
		Available:        available,
		PreparationHours: r.PreparationHours,
	}
}
