package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/middlewares"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/services"
)

// CarLister defines the interface that the car listing service must implement.
type CarLister interface {
	ListByOwner(ctx context.Context, login string) ([]models.CarDB, error)
}

// NewCarListHandler returns an HTTP handler listing the authenticated user's cars.
// @Summary List own cars
// @Description Returns the cars owned by the authenticated user
// @Tags cars
// @Produce json
// @Success 200 {array} handlers.CarResponse "Cars of the authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /cars [get]
func NewCarListHandler(svc CarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, ok := middlewares.GetLoginFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cars, err := svc.ListByOwner(r.Context(), login)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toCarResponses(cars))
	}
}
