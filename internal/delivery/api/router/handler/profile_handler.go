package handler

import (
	"net/http"

	"bakeandtaste/internal/delivery/api/response"
	"bakeandtaste/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	identityUC usecase.IdentityUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{identityUC: params.IdentityUC}
}

// UpdateProfileRequest represents a partial profile update. Omitted fields are kept.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principalID, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.identityUC.ResolveProfile(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile changes the caller's contact fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	principalID, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.identityUC.UpdateProfile(c.Request().Context(), principalID, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}
