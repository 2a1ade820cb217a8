package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/middlewares"
	"github.com/desafio/car-users-api/internal/services"
)

// CarDeleter defines the interface that the car removal service must implement.
type CarDeleter interface {
	Delete(ctx context.Context, login string, id int64) error
}

// NewCarDeleteHandler returns an HTTP handler removing a car owned by the authenticated user.
// @Summary Delete car
// @Description Removes a car. Only cars owned by the authenticated user can be removed.
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 204 "Car deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Car not found"
// @Security BearerAuth
// @Router /cars/{id} [delete]
func NewCarDeleteHandler(svc CarDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, ok := middlewares.GetLoginFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Car not found")
			return
		}

		if err := svc.Delete(r.Context(), login, id); err != nil {
			switch {
			case errors.Is(err, services.ErrCarNotFound):
				writeError(w, http.StatusNotFound, "Car not found")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
