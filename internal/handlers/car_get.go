package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/services"
)

// CarGetter defines the interface that the car lookup service must implement.
type CarGetter interface {
	Get(ctx context.Context, id int64) (*models.CarDB, error)
}

// NewCarGetHandler returns an HTTP handler fetching a single car by ID.
// @Summary Get car by ID
// @Description Returns a car by its ID
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} handlers.CarResponse "Car found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Car not found"
// @Security BearerAuth
// @Router /cars/{id} [get]
func NewCarGetHandler(svc CarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Car not found")
			return
		}

		car, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCarNotFound):
				writeError(w, http.StatusNotFound, "Car not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toCarResponse(*car))
	}
}
