package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/services"
)

// Loginer defines the interface that the signin service must implement.
type Loginer interface {
	Login(ctx context.Context, login, password string) (string, string, error)
}

// SigninRequest represents the JSON body for user signin
// swagger:model SigninRequest
type SigninRequest struct {
	// Login
	// required: true
	// default: johndoe
	Login string `json:"login"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SigninResponse represents a successful signin response
// swagger:model SigninResponse
type SigninResponse struct {
	// Success message
	// default: Authentication successful
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Full name of the authenticated user
	// default: John Doe
	Name string `json:"name"`
}

// NewSigninHandler returns an HTTP handler for user signin.
// @Summary User signin
// @Description Authenticate user by login and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param signinRequest body handlers.SigninRequest true "Signin request"
// @Success 200 {object} handlers.SigninResponse "JWT token returned"
// @Failure 401 {object} handlers.ErrorResponse "Invalid login or password"
// @Router /signin [post]
func NewSigninHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid login or password")
			return
		}

		token, name, err := svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid login or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, SigninResponse{
			Message: "Authentication successful",
			Token:   token,
			Name:    name,
		})
	}
}
