package services

import "errors"

// Error variables returned by the services. Handlers map them to HTTP
// status codes; anything not listed here is an unexpected error.
var (
	ErrMissingFields             = errors.New("missing required fields")
	ErrInvalidFields             = errors.New("invalid fields")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrLoginAlreadyExists        = errors.New("login already exists")
	ErrLicensePlateAlreadyExists = errors.New("license plate already exists")
	ErrUserNotFound              = errors.New("user not found")
	ErrCarNotFound               = errors.New("car not found")
	ErrCarNotOwned               = errors.New("car does not belong to the user")
	ErrSomeCarsNotFound          = errors.New("one or more cars not found")
	ErrInvalidCredentials        = errors.New("invalid login or password")
)
