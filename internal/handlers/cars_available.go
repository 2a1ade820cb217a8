package handlers

import (
	"context"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
)

// AvailableCarsLister defines the interface that the available cars service must implement.
type AvailableCarsLister interface {
	ListAvailable(ctx context.Context) ([]models.CarDB, error)
}

// NewAvailableCarsHandler returns an HTTP handler listing cars without an owner.
// @Summary List available cars
// @Description Returns all cars that currently have no owner
// @Tags users
// @Produce json
// @Success 200 {array} handlers.CarResponse "Available cars"
// @Router /users/available-cars [get]
func NewAvailableCarsHandler(svc AvailableCarsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cars, err := svc.ListAvailable(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toCarResponses(cars))
	}
}
