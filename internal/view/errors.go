package view

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/drxlabs/drx-backend/internal/model"
)

// ErrorStatus maps a ledger error kind to the HTTP status the API returns.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrItemNotFound),
		errors.Is(err, model.ErrMissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrMissingFields),
		errors.Is(err, model.ErrInsufficientBalance),
		errors.Is(err, model.ErrNoBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
