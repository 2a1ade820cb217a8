package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/middlewares"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/services"
)

// CarUpdater defines the interface that the car update service must implement.
type CarUpdater interface {
	Update(ctx context.Context, login string, id int64, car *models.CarDB) (*models.CarDB, error)
}

// NewCarUpdateHandler returns an HTTP handler updating a car.
// @Summary Update car
// @Description Overwrites the car's fields. License plate must stay unique.
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param carRequest body handlers.CarRequest true "Updated car"
// @Success 200 {object} handlers.CarResponse "Updated car"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Car not found"
// @Failure 409 {object} handlers.ErrorResponse "License plate already exists"
// @Security BearerAuth
// @Router /cars/{id} [put]
func NewCarUpdateHandler(svc CarUpdater) http.HandlerFunc {
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

		var req CarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		car := req.toModel()
		updated, err := svc.Update(r.Context(), login, id, &car)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCarNotFound):
				writeError(w, http.StatusNotFound, "Car not found")
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing fields")
			case errors.Is(err, services.ErrInvalidFields):
				writeError(w, http.StatusBadRequest, "Invalid fields")
			case errors.Is(err, services.ErrLicensePlateAlreadyExists):
				writeError(w, http.StatusConflict, "License plate already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toCarResponse(*updated))
	}
}
