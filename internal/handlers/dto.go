package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/desafio/car-users-api/internal/models"
)

const birthdayFormat = "2006-01-02"

// ErrorResponse is the common error body returned by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid fields
	Message string `json:"message"`

	// Numeric error code
	// default: 400
	ErrorCode int `json:"errorCode"`
}

// CarRequest represents the JSON body for a car.
// swagger:model CarRequest
type CarRequest struct {
	// Manufacturing year
	// required: true
	// default: 2020
	Year int `json:"year"`

	// License plate
	// required: true
	// default: ABC-1234
	LicensePlate string `json:"licensePlate"`

	// Model
	// required: true
	// default: Corolla
	Model string `json:"model"`

	// Color
	// required: true
	// default: Black
	Color string `json:"color"`

	// Owner ID, omit to leave the car unassigned
	UserID *int64 `json:"userId,omitempty"`
}

// CarResponse represents a car returned by the API.
// swagger:model CarResponse
type CarResponse struct {
	ID           int64  `json:"id"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	UserID       *int64 `json:"userId,omitempty"`
}

// UserRequest represents the JSON body for a user.
// swagger:model UserRequest
type UserRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email address
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Birthday in YYYY-MM-DD format
	// default: 1990-05-01
	Birthday string `json:"birthday"`

	// Login
	// required: true
	// default: johndoe
	Login string `json:"login"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Phone number
	// default: +5511999999999
	Phone string `json:"phone"`

	// Cars created together with the user
	Cars []CarRequest `json:"cars,omitempty"`
}

// UserResponse represents a user returned by the API.
// swagger:model UserResponse
type UserResponse struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Birthday  string        `json:"birthday,omitempty"`
	Login     string        `json:"login"`
	Phone     string        `json:"phone,omitempty"`
	Cars      []CarResponse `json:"cars"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (r UserRequest) toModel() (*models.UserDB, error) {
	user := &models.UserDB{
		Login:     r.Login,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
	if r.Birthday != "" {
		b, err := time.Parse(birthdayFormat, r.Birthday)
		if err != nil {
			return nil, err
		}
		user.Birthday = &b
	}
	return user, nil
}

func (r CarRequest) toModel() models.CarDB {
	return models.CarDB{
		LicensePlate: r.LicensePlate,
		Model:        r.Model,
		Color:        r.Color,
		Year:         r.Year,
		UserID:       r.UserID,
	}
}

func carsToModels(reqs []CarRequest) []models.CarDB {
	cars := make([]models.CarDB, 0, len(reqs))
	for _, c := range reqs {
		cars = append(cars, c.toModel())
	}
	return cars
}

func toCarResponse(c models.CarDB) CarResponse {
	return CarResponse{
		ID:           c.ID,
		Year:         c.Year,
		LicensePlate: c.LicensePlate,
		Model:        c.Model,
		Color:        c.Color,
		UserID:       c.UserID,
	}
}

func toCarResponses(cars []models.CarDB) []CarResponse {
	resp := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		resp = append(resp, toCarResponse(c))
	}
	return resp
}

func toUserResponse(u models.UserDB, cars []models.CarDB) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Login:     u.Login,
		Phone:     u.Phone,
		Cars:      toCarResponses(cars),
		CreatedAt: u.CreatedAt,
	}
	if u.Birthday != nil {
		resp.Birthday = u.Birthday.Format(birthdayFormat)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message, ErrorCode: status})
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
