package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/services"
)

// UserDeleter defines the interface that the user removal service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewUserDeleteHandler returns an HTTP handler removing a user.
// @Summary Delete user
// @Description Removes a user. Cars owned by the user become available again.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
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
