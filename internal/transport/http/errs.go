package http

import (
	"errors"
	"net/http"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
)

// toHTTP сводит доменные ошибки к кодам ответа.
func toHTTP(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTaskDone),
		errors.Is(err, domain.ErrDoseAdministered),
		errors.Is(err, domain.ErrCheckupDone),
		errors.Is(err, domain.ErrAlertResolved):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, postgres.ErrInvalidCursor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
