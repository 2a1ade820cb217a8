package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/services"
)

// CarAttacher defines the interface that the car assignment service must implement.
type CarAttacher interface {
	AddCarsToUser(ctx context.Context, userID int64, carIDs []int64) error
}

// AddCarsResponse represents a successful car assignment response
// swagger:model AddCarsResponse
type AddCarsResponse struct {
	// Success message
	// default: Cars added successfully.
	Message string `json:"message"`
}

// NewUserAddCarsHandler returns an HTTP handler assigning cars to a user.
// @Summary Add cars to user
// @Description Assigns the given cars to the user. All cars must exist; the operation is all-or-nothing.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param carIds body []int true "Car IDs to assign"
// @Success 200 {object} handlers.AddCarsResponse "Cars assigned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid car IDs"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userId}/add-cars [patch]
func NewUserAddCarsHandler(svc CarAttacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userId")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var carIDs []int64
		if err := json.NewDecoder(r.Body).Decode(&carIDs); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid car IDs")
			return
		}

		if err := svc.AddCarsToUser(r.Context(), userID, carIDs); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrSomeCarsNotFound):
				writeError(w, http.StatusBadRequest, "Invalid car IDs")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, AddCarsResponse{Message: "Cars added successfully."})
	}
}
