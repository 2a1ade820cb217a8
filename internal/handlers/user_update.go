package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/services"
)

// UserUpdater defines the interface that the user update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, upd *models.UserDB) (*models.UserDB, error)
}

// NewUserUpdateHandler returns an HTTP handler updating a user.
// @Summary Update user
// @Description Overwrites the user's profile fields. An empty password keeps the current one.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param userRequest body handlers.UserRequest true "Updated user"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email or login already exists"
// @Security BearerAuth
// @Router /users/{id} [put]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var req UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		upd, err := req.toModel()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		user, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing fields")
			case errors.Is(err, services.ErrInvalidFields):
				writeError(w, http.StatusBadRequest, "Invalid fields")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Email already exists")
			case errors.Is(err, services.ErrLoginAlreadyExists):
				writeError(w, http.StatusConflict, "Login already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*user, nil))
	}
}
