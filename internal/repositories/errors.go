package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Duplicate errors reported when a storage-level unique constraint fires.
// The pre-checks in the services are only a fast path; these are the
// authoritative guard against concurrent writers.
var (
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrDuplicateLogin        = errors.New("login already exists")
	ErrDuplicateLicensePlate = errors.New("license plate already exists")
)

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

// Constraint names from the schema.
const (
	usersEmailKey       = "users_email_key"
	usersLoginKey       = "users_login_key"
	carsLicensePlateKey = "cars_license_plate_key"
)

// mapUniqueViolation translates a Postgres unique-violation error into the
// matching duplicate error. Any other error is returned unchanged.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case usersEmailKey:
		return ErrDuplicateEmail
	case usersLoginKey:
		return ErrDuplicateLogin
	case carsLicensePlateKey:
		return ErrDuplicateLicensePlate
	}
	return err
}
