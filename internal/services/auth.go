package services

import (
	"context"
	"errors"
	"strings"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted password length on signup.
const minPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByLogin(ctx context.Context, login string) (*models.UserDB, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error)
	ExistsByLogin(ctx context.Context, login string, excludeID *int64) (bool, error)
	List(ctx context.Context, page, size int, sortBy string) ([]models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (int64, error)
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, login string) (string, error)
}

// AuthService handles signup and signin.
type AuthService struct {
	users  UserReader
	writer UserWriter
	cars   CarWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, writer UserWriter, cars CarWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		users:  users,
		writer: writer,
		cars:   cars,
		jwt:    jwt,
	}
}

// Register creates a new user together with any cars supplied in the signup
// payload. The email duplicate check runs before the login check so conflict
// reporting is deterministic; the storage-level unique constraints remain the
// authoritative guard against concurrent signups.
func (svc *AuthService) Register(ctx context.Context, user *models.UserDB, cars []models.CarDB) (int64, error) {
	if strings.TrimSpace(user.Login) == "" ||
		strings.TrimSpace(user.Email) == "" ||
		strings.TrimSpace(user.Password) == "" {
		return 0, ErrMissingFields
	}
	if len(user.Password) < minPasswordLength {
		return 0, ErrInvalidFields
	}
	for i := range cars {
		if err := validateCar(&cars[i]); err != nil {
			return 0, err
		}
	}

	exists, err := svc.users.ExistsByEmail(ctx, user.Email, nil)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return 0, err
	}
	if exists {
		return 0, ErrEmailAlreadyExists
	}

	exists, err = svc.users.ExistsByLogin(ctx, user.Login, nil)
	if err != nil {
		logger.Log.Errorw("failed to check login exists", "err", err)
		return 0, err
	}
	if exists {
		return 0, ErrLoginAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}
	user.Password = string(hashedPassword)

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "login", user.Login, "err", err)
		return 0, mapDuplicateError(err)
	}

	for i := range cars {
		cars[i].UserID = &id
		if _, err := svc.cars.Save(ctx, &cars[i]); err != nil {
			logger.Log.Errorw("failed to save signup car", "license_plate", cars[i].LicensePlate, "err", err)
			return 0, mapDuplicateError(err)
		}
	}

	return id, nil
}

// Login authenticates a user and returns a bearer token plus the user's
// display name. A missing login and a wrong password are indistinguishable
// to the caller.
func (svc *AuthService) Login(ctx context.Context, login, password string) (token, name string, err error) {
	user, err := svc.users.GetByLogin(ctx, login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Infow("signin for unknown login", "login", login)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("signin with invalid credentials", "login", login)
		return "", "", ErrInvalidCredentials
	}

	token, err = svc.jwt.Generate(ctx, user.Login)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", "", err
	}

	name = strings.TrimSpace(user.FirstName + " " + user.LastName)
	return token, name, nil
}

// mapDuplicateError converts storage-level unique violations into the
// matching service conflicts, covering races the pre-checks cannot.
func mapDuplicateError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return ErrEmailAlreadyExists
	case errors.Is(err, repositories.ErrDuplicateLogin):
		return ErrLoginAlreadyExists
	case errors.Is(err, repositories.ErrDuplicateLicensePlate):
		return ErrLicensePlateAlreadyExists
	}
	return err
}
