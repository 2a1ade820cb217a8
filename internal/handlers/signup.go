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

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, user *models.UserDB, cars []models.CarDB) (int64, error)
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User created successfully
	Message string `json:"message"`

	// ID of the created user
	ID int64 `json:"id"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account, optionally together with its cars. Login, email and license plates must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User successfully created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Email, login or license plate already exists"
// @Router /signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		user, err := req.toModel()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fields")
			return
		}

		id, err := svc.Register(r.Context(), user, carsToModels(req.Cars))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing fields")
			case errors.Is(err, services.ErrInvalidFields):
				writeError(w, http.StatusBadRequest, "Invalid fields")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Email already exists")
			case errors.Is(err, services.ErrLoginAlreadyExists):
				writeError(w, http.StatusConflict, "Login already exists")
			case errors.Is(err, services.ErrLicensePlateAlreadyExists):
				writeError(w, http.StatusConflict, "License plate already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User created successfully",
			ID:      id,
		})
	}
}
