package handler

import (
	"net/http"

	"bakeandtaste/internal/delivery/api/response"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListCakesQuery holds the catalog filters.
type ListCakesQuery struct {
	Limit    int    `query:"limit" validate:"gte=0"`
	Offset   int    `query:"offset" validate:"gte=0"`
	Category string `query:"category" validate:"max=50"`
	BakeryID string `query:"bakery_id" validate:"omitempty,uuid"`
}

// ListCakes returns available cakes, newest first.
func (h *CatalogHandler) ListCakes(c echo.Context) error {
	var query ListCakesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	filter := entity.CakeFilter{
		Category: query.Category,
		Page:     entity.Page{Limit: query.Limit, Offset: query.Offset},
	}
	if query.BakeryID != "" {
		bakeryID, err := uuid.Parse(query.BakeryID)
		if err != nil {
			return domainerrors.ErrInvalidInput.WrapMessage("bakery_id must be a UUID")
		}
		filter.BakeryID = bakeryID
	}

	listings, err := h.catalogUC.ListAvailableCakes(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapSlice(listings, toCakeListingResponse), query.Limit, query.Offset)
}

// GetCake returns one available cake.
func (h *CatalogHandler) GetCake(c echo.Context) error {
	cakeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.catalogUC.GetAvailableCake(c.Request().Context(), cakeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCakeListingResponse(listing))
}

// GetBakery returns a bakery's public page.
func (h *CatalogHandler) GetBakery(c echo.Context) error {
	bakeryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bakery, err := h.catalogUC.GetBakery(c.Request().Context(), bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBakeryResponse(bakery))
}

// GetBakeryQR renders the bakery's share QR code as a PNG.
func (h *CatalogHandler) GetBakeryQR(c echo.Context) error {
	bakeryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalogUC.GenerateBakeryQR(c.Request().Context(), bakeryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
