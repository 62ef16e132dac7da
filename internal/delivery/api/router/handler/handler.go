// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"bakeandtaste/internal/delivery/api/response"
	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed request")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage(name + " must be a UUID")
	}

	return id, nil
}

func currentPrincipal(c echo.Context) (uuid.UUID, error) {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WrapMessage("no authenticated principal")
	}

	return principalID, nil
}

func currentProfile(c echo.Context) (*entity.Profile, error) {
	profile, ok := deliverycontext.GetProfile(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no resolved profile")
	}

	return profile, nil
}
