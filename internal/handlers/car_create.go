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

// CarCreator defines the interface that the car creation service must implement.
type CarCreator interface {
	Create(ctx context.Context, login string, car *models.CarDB) (*models.CarDB, error)
}

// NewCarCreateHandler returns an HTTP handler creating a car for the authenticated user.
// @Summary Create car
// @Description Creates a car owned by the authenticated user unless an explicit owner is given. License plate must be unique.
// @Tags cars
// @Accept json
// @Produce json
// @Param carRequest body handlers.CarRequest true "Car to create"
// @Success 201 {object} handlers.CarResponse "Created car"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "License plate already exists"
// @Security BearerAuth
// @Router /cars [post]
func NewCarCreateHandler(svc CarCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, ok := middlewares.GetLoginFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		car := req.toModel()
		created, err := svc.Create(r.Context(), login, &car)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing fields")
			case errors.Is(err, services.ErrInvalidFields):
				writeError(w, http.StatusBadRequest, "Invalid fields")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrLicensePlateAlreadyExists):
				writeError(w, http.StatusConflict, "License plate already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toCarResponse(*created))
	}
}
