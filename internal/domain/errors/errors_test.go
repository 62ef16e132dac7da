package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"bakeandtaste/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrCakeUnavailable.WrapMessage("cake 42")

	assert.True(t, stderrors.Is(err, ErrCakeUnavailable))
	assert.False(t, stderrors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "cake 42")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrInvalidInput.WithDetails("quantity must be at least 1")

	assert.Equal(t, "INVALID_INPUT", detailed.ErrorCode())
	assert.Equal(t, "quantity must be at least 1", detailed.Details())
	assert.Empty(t, ErrInvalidInput.Details())
	assert.True(t, stderrors.Is(detailed, ErrInvalidInput))

	notFound := ErrCakeNotFound.WithDetails("id=42")
	assert.True(t, stderrors.Is(notFound, ErrCakeNotFound))
	assert.True(t, stderrors.Is(notFound, ErrNotFound))
}

func TestDatabaseExecuteError_MapsToUnavailable(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "find cake")

	assert.True(t, stderrors.Is(err, ErrUnavailable))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "find cake", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindErrors_MatchTheirKind(t *testing.T) {
	for _, err := range []error{ErrProfileNotFound, ErrBakeryNotFound, ErrCakeNotFound, ErrOrderNotFound} {
		assert.True(t, stderrors.Is(err, ErrNotFound), err.Error())
		assert.False(t, stderrors.Is(err, ErrConflict), err.Error())
	}

	wrapped := ErrCakeInUse.WrapMessage("delete cake")
	assert.True(t, stderrors.Is(wrapped, ErrCakeInUse))
	assert.True(t, stderrors.Is(wrapped, ErrConflict))
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode())

	assert.False(t, stderrors.Is(ErrNotFound, ErrCakeNotFound))
}

func TestPublicDetails(t *testing.T) {
	annotated := ErrCakeUnavailable.WrapMessage("cake is missing or not available")
	wrapped := errors.Wrap(errors.Wrap(annotated, "failed to find cake"), "failed to place order")

	assert.Equal(t, "cake is missing or not available", PublicDetails(wrapped))
	assert.True(t, stderrors.Is(wrapped, ErrCakeUnavailable))
	assert.Equal(t, "failed to place order: failed to find cake: cake is missing or not available: "+ErrCakeUnavailable.Error(), wrapped.Error())

	detailed := errors.Wrap(ErrInvalidInput.WithDetails("quantity: must be at most 1000"), "bind order")
	assert.Equal(t, "quantity: must be at most 1000", PublicDetails(detailed))

	assert.Empty(t, PublicDetails(errors.Wrap(ErrOrderNotFound, "load order")))
	assert.Empty(t, PublicDetails(stderrors.New("plain")))
}
