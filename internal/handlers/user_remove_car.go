package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/services"
)

// CarDetacher defines the interface that the car release service must implement.
type CarDetacher interface {
	RemoveCarFromUser(ctx context.Context, userID, carID int64) error
}

// RemoveCarResponse represents a successful car release response
// swagger:model RemoveCarResponse
type RemoveCarResponse struct {
	// Success message
	// default: Car removed successfully.
	Message string `json:"message"`
}

// NewUserRemoveCarHandler returns an HTTP handler releasing a car from a user.
// @Summary Remove car from user
// @Description Detaches the car from the user, making it available again. The car keeps existing.
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param carId path int true "Car ID"
// @Success 200 {object} handlers.RemoveCarResponse "Car released"
// @Failure 404 {object} handlers.ErrorResponse "User not found or car not owned by the user"
// @Security BearerAuth
// @Router /users/{userId}/remove-car/{carId} [patch]
func NewUserRemoveCarHandler(svc CarDetacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userId")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		carID, err := parseIDParam(r, "carId")
		if err != nil {
			writeError(w, http.StatusNotFound, "Car not found")
			return
		}

		if err := svc.RemoveCarFromUser(r.Context(), userID, carID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrCarNotOwned):
				writeError(w, http.StatusNotFound, "Car not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, RemoveCarResponse{Message: "Car removed successfully."})
	}
}
